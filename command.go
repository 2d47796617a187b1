package jsontransform

import (
	"github.com/Magicianred/JsonTransform/internal/document"
)

// Command is one deferred edit discovered in a transformation document. Apply
// performs the edit against the working target, reporting failures through
// ctx.Fail rather than returning them, so one broken command never aborts the
// rest of the run.
type Command interface {
	Apply(target *Target, ctx *Context)
}

// Constructor builds a Command bound to the target path the walker derived
// from the command key's position and name suffix. argument is the JSON value
// the key mapped to; its interpretation is up to the command.
type Constructor func(target Path, argument any) Command

// Target wraps the working document every command edits. The document starts
// as a deep copy of the source with the data portion of the transformation
// merged in, so edits never touch caller-owned values.
type Target struct {
	root *any
}

// Root returns the current working document.
func (t *Target) Root() any {
	return *t.root
}

// Resolve returns the value at path. The second return is false when the
// path does not exist, which is distinct from an existing null slot.
func (t *Target) Resolve(path Path) (any, bool) {
	return document.Resolve(*t.root, path)
}

// Set writes value at path, creating the final object property when absent.
// Intermediate steps must already exist.
func (t *Target) Set(path Path, value any) bool {
	return document.Set(t.root, path, value)
}

// Replace writes value over an existing slot only.
func (t *Target) Replace(path Path, value any) bool {
	return document.Replace(t.root, path, value)
}

// Delete removes the slot at path, splicing array elements so later indexes
// shift left.
func (t *Target) Delete(path Path) bool {
	return document.Delete(t.root, path)
}

// Context carries the per-run surroundings a command may consult: the
// original source document (read-only by convention), the caller's opaque
// state, and the error sink.
type Context struct {
	// Source is the unmodified document the transformation was called with.
	// Commands read from it and must not mutate it.
	Source any

	// State is whatever the caller passed via WithState, available to custom
	// commands. The built-ins ignore it.
	State any

	sink    *[]Error
	recurse func(source, transformation any) Result
}

// Fail records err against path. Recorded failures surface in Result.Errors
// in the order the commands ran.
func (c *Context) Fail(path Path, err error) {
	*c.sink = append(*c.sink, Error{Path: path, Err: err})
}
