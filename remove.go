package jsontransform

import "fmt"

// removeCommand deletes its target from the working document. Removing an
// array element splices the array, so sibling removes rely on the stack's
// reverse application order to keep their indexes valid. The argument is
// ignored; null is the conventional spelling.
type removeCommand struct {
	path Path
}

func newRemove(target Path, _ any) Command {
	return &removeCommand{path: target}
}

// Apply implements Command.
func (c *removeCommand) Apply(target *Target, ctx *Context) {
	if len(c.path) == 0 {
		ctx.Fail(c.path, fmt.Errorf("%w: cannot remove the document root", ErrShapeMismatch))
		return
	}
	if !target.Delete(c.path) {
		ctx.Fail(c.path, fmt.Errorf("%w: nothing to remove", ErrPathNotFound))
	}
}
