package jsontransform

import (
	"fmt"

	"github.com/Magicianred/JsonTransform/internal/document"
)

// unionCommand folds its argument into the container at the target path. For
// arrays the argument must be an array and each element is appended unless a
// structurally equal element is already present. For objects the argument
// must be an object and its properties are set, argument winning over
// existing values. Anything else is a shape mismatch.
type unionCommand struct {
	path Path
	arg  any
}

func newUnion(target Path, argument any) Command {
	return &unionCommand{path: target, arg: argument}
}

// Apply implements Command.
func (c *unionCommand) Apply(target *Target, ctx *Context) {
	node, ok := target.Resolve(c.path)
	if !ok {
		ctx.Fail(c.path, fmt.Errorf("%w: no value to union with", ErrPathNotFound))
		return
	}
	switch cur := node.(type) {
	case []any:
		arg, ok := c.arg.([]any)
		if !ok {
			ctx.Fail(c.path, fmt.Errorf("%w: cannot union %T into an array", ErrShapeMismatch, c.arg))
			return
		}
		merged := cur
		for _, el := range arg {
			if !containsValue(merged, el) {
				merged = append(merged, document.Clone(el))
			}
		}
		if !target.Replace(c.path, merged) {
			ctx.Fail(c.path, fmt.Errorf("%w: union target vanished", ErrPathNotFound))
		}
	case map[string]any:
		arg, ok := c.arg.(map[string]any)
		if !ok {
			ctx.Fail(c.path, fmt.Errorf("%w: cannot union %T into an object", ErrShapeMismatch, c.arg))
			return
		}
		for k, v := range arg {
			cur[k] = document.Clone(v)
		}
	default:
		ctx.Fail(c.path, fmt.Errorf("%w: cannot union into %T", ErrShapeMismatch, node))
	}
}

func containsValue(list []any, v any) bool {
	for _, el := range list {
		if document.Equal(el, v) {
			return true
		}
	}
	return false
}
