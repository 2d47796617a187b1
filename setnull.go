package jsontransform

import "fmt"

// setNullCommand overwrites an existing slot with null. It exists because the
// merge deliberately drops nulls from the transformation document; this is
// the one way to null a value out. The slot must already exist, making the
// command a replacement, never an insertion.
type setNullCommand struct {
	path Path
}

func newSetNull(target Path, _ any) Command {
	return &setNullCommand{path: target}
}

// Apply implements Command.
func (c *setNullCommand) Apply(target *Target, ctx *Context) {
	if !target.Replace(c.path, nil) {
		ctx.Fail(c.path, fmt.Errorf("%w: no value to null out", ErrPathNotFound))
	}
}
