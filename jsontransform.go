// Package jsontransform edits JSON documents with transformation documents
// that mirror the shape of the data they change. A transformation is itself
// JSON: plain properties merge into the source as ordinary data, while
// specially formatted keys such as "$remove:b" or "$copy:total" are commands
// bound to the location where they appear. Applying
//
//	{"$remove:b": null}
//
// to {"a": 1, "b": [1, 2, 3]} yields {"a": 1}.
//
// A run never mutates its inputs and never aborts on a failing command; each
// failure is recorded with the path it occurred at and the rest of the
// transformation proceeds. Custom commands are added with
// RegisterTransformation or a scoped Registry.
package jsontransform

import (
	"github.com/ohler55/ojg/oj"

	"github.com/Magicianred/JsonTransform/internal/document"
)

// Transform applies transformation to source and returns the edited copy
// along with any recorded command failures. Both arguments are parsed JSON
// values (map[string]any, []any, scalars) and are left untouched; the
// returned document shares no mutable state with either.
func Transform(source, transformation any, opts ...Option) Result {
	return run(newConfig(opts), source, transformation)
}

// TransformString is Transform over JSON text. It returns a *ParseError when
// either input fails to parse; failures of individual commands are reported
// through the Result as usual, not as the error return.
func TransformString(sourceJSON, transformationJSON string, opts ...Option) (Result, error) {
	source, err := oj.ParseString(sourceJSON)
	if err != nil {
		return Result{}, &ParseError{Input: "source", Err: err}
	}
	transformation, err := oj.ParseString(transformationJSON)
	if err != nil {
		return Result{}, &ParseError{Input: "transformation", Err: err}
	}
	return Transform(source, transformation, opts...), nil
}

// run is the four-stage pipeline behind every transformation, nested
// $foreach runs included: collect commands from a private copy of the
// transformation, merge what remains into a private copy of the source, then
// apply the collected commands in reverse discovery order.
func run(cfg *config, source, transformation any) Result {
	working := document.Clone(transformation)
	stack := &commandStack{}
	collect(cfg.registry, working, Path{}, stack)

	result := document.Clone(source)
	document.Merge(&result, working)

	var errs []Error
	ctx := &Context{
		Source: source,
		State:  cfg.state,
		sink:   &errs,
	}
	ctx.recurse = func(src, tr any) Result {
		return run(cfg, src, tr)
	}
	target := &Target{root: &result}
	for {
		cmd, ok := stack.pop()
		if !ok {
			break
		}
		cmd.Apply(target, ctx)
	}
	return Result{Document: result, Errors: errs}
}
