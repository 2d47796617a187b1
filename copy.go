package jsontransform

import (
	"fmt"

	"github.com/ohler55/ojg/jp"

	"github.com/Magicianred/JsonTransform/internal/document"
)

// copyCommand writes a deep copy of a node from the source document at its
// target path. The argument is a JSONPath expression evaluated against the
// original source, not the working document, so copies observe pre-run
// values no matter what other commands have already edited.
type copyCommand struct {
	path Path
	arg  any
}

func newCopy(target Path, argument any) Command {
	return &copyCommand{path: target, arg: argument}
}

// Apply implements Command.
func (c *copyCommand) Apply(target *Target, ctx *Context) {
	expr, ok := c.arg.(string)
	if !ok {
		ctx.Fail(c.path, fmt.Errorf("%w: copy argument must be a path string, not %T", ErrShapeMismatch, c.arg))
		return
	}
	x, err := jp.ParseString(expr)
	if err != nil {
		ctx.Fail(c.path, fmt.Errorf("%w: bad source path %q: %v", ErrPathNotFound, expr, err))
		return
	}
	matches := x.Get(ctx.Source)
	if len(matches) == 0 {
		ctx.Fail(c.path, fmt.Errorf("%w: source path %q matches nothing", ErrPathNotFound, expr))
		return
	}
	if !target.Set(c.path, document.Clone(matches[0])) {
		ctx.Fail(c.path, fmt.Errorf("%w: no slot for copy of %q", ErrPathNotFound, expr))
	}
}
