package jsontransform

import "fmt"

// forEachCommand runs a nested transformation over every child of the
// container at its target path. Each child plays both roles in the nested
// run: it is the sub-source the descriptor's commands read from and the base
// the descriptor merges onto. The descriptor itself is arbitrary
// transformation JSON, commands included; those commands are collected by
// the nested run, not the outer one.
type forEachCommand struct {
	path       Path
	descriptor any
}

func newForEach(target Path, argument any) Command {
	return &forEachCommand{path: target, descriptor: argument}
}

// Apply implements Command.
func (c *forEachCommand) Apply(target *Target, ctx *Context) {
	node, ok := target.Resolve(c.path)
	if !ok {
		ctx.Fail(c.path, fmt.Errorf("%w: nothing to iterate", ErrPathNotFound))
		return
	}
	switch children := node.(type) {
	case []any:
		for i, child := range children {
			res := ctx.recurse(child, c.descriptor)
			children[i] = res.Document
			c.hoist(ctx, c.path.Index(i), res.Errors)
		}
	case map[string]any:
		for _, k := range sortedKeys(children) {
			res := ctx.recurse(children[k], c.descriptor)
			children[k] = res.Document
			c.hoist(ctx, c.path.Child(k), res.Errors)
		}
	default:
		ctx.Fail(c.path, fmt.Errorf("%w: cannot iterate %T", ErrShapeMismatch, node))
	}
}

// hoist republishes a nested run's errors against the outer document by
// prefixing each recorded path with the child's location.
func (c *forEachCommand) hoist(ctx *Context, base Path, errs []Error) {
	for _, e := range errs {
		p := make(Path, 0, len(base)+len(e.Path))
		p = append(p, base...)
		p = append(p, e.Path...)
		ctx.Fail(p, e.Err)
	}
}
