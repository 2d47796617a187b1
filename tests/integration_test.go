package tests

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsontransform "github.com/Magicianred/JsonTransform"
)

// testFixture bundles the parsed documents for integration tests: a small
// order export feed and a transformation that exercises every built-in
// command in one run.
type testFixture struct {
	source         any
	transformation any
}

const sourceDocument = `{
	"service": "orders",
	"internal": {"debugToken": "t-123", "shard": 3},
	"orders": [
		{"id": "o-1", "total": 30, "card": "4111-1111", "items": [{"sku": "a", "qty": 1}, {"sku": "b", "qty": 2}]},
		{"id": "o-2", "total": 12, "card": "5500-2222", "items": [{"sku": "c", "qty": 5}]}
	],
	"tags": ["export", "v2"]
}`

const transformationDocument = `{
	"$remove:internal": null,
	"$copy:exportedFrom": "$.service",
	"$union:tags": ["sanitized", "v2"],
	"$foreach:orders": {
		"$remove:card": null,
		"$copy:firstSku": "$.items[0].sku",
		"audited": true
	},
	"meta": {"version": 2, "note": null}
}`

func setup(t *testing.T) *testFixture {
	t.Helper()
	source, err := oj.ParseString(sourceDocument)
	require.NoError(t, err)
	transformation, err := oj.ParseString(transformationDocument)
	require.NoError(t, err)
	return &testFixture{source: source, transformation: transformation}
}

func TestIntegration_FullPipeline(t *testing.T) {
	fix := setup(t)

	res := jsontransform.Transform(fix.source, fix.transformation)
	require.Empty(t, res.Errors)

	want, err := oj.ParseString(`{
		"service": "orders",
		"exportedFrom": "orders",
		"orders": [
			{"id": "o-1", "total": 30, "audited": true, "firstSku": "a",
			 "items": [{"sku": "a", "qty": 1}, {"sku": "b", "qty": 2}]},
			{"id": "o-2", "total": 12, "audited": true, "firstSku": "c",
			 "items": [{"sku": "c", "qty": 5}]}
		],
		"tags": ["export", "v2", "sanitized"],
		"meta": {"version": 2}
	}`)
	require.NoError(t, err)
	assert.Equal(t, want, res.Document)
}

func TestIntegration_InputsUntouched(t *testing.T) {
	fix := setup(t)
	wantSource, err := oj.ParseString(sourceDocument)
	require.NoError(t, err)
	wantTransformation, err := oj.ParseString(transformationDocument)
	require.NoError(t, err)

	_ = jsontransform.Transform(fix.source, fix.transformation)

	assert.Equal(t, wantSource, fix.source, "source must survive a run untouched")
	assert.Equal(t, wantTransformation, fix.transformation, "transformation must survive a run untouched")
}

func TestIntegration_BestEffortErrors(t *testing.T) {
	res, err := jsontransform.TransformString(sourceDocument, `{
		"$remove:absent": null,
		"$union:service": ["not-a-container"],
		"$setnull:internal": null
	}`)
	require.NoError(t, err)

	require.Len(t, res.Errors, 2)
	paths := []string{res.Errors[0].Path.String(), res.Errors[1].Path.String()}
	assert.Contains(t, paths, "$.absent")
	assert.Contains(t, paths, "$.service")
	for _, e := range res.Errors {
		ok := errors.Is(e, jsontransform.ErrPathNotFound) || errors.Is(e, jsontransform.ErrShapeMismatch)
		assert.True(t, ok, "error %v should wrap a sentinel", e)
	}

	// The setnull still landed even though its siblings failed.
	doc := res.Document.(map[string]any)
	v, exists := doc["internal"]
	require.True(t, exists)
	assert.Nil(t, v)
}

func TestIntegration_CustomCommandWithState(t *testing.T) {
	fix := setup(t)

	reg := jsontransform.NewRegistry()
	require.NoError(t, reg.Register("redact", newRedact))

	res := jsontransform.Transform(fix.source,
		mustParse(t, `{"$foreach:orders": {"@redact:card": null}}`),
		jsontransform.WithRegistry(reg),
		jsontransform.WithState("***"))
	require.Empty(t, res.Errors)

	for _, o := range res.Document.(map[string]any)["orders"].([]any) {
		assert.Equal(t, "***", o.(map[string]any)["card"])
	}
}

func TestIntegration_StringRoundTrip(t *testing.T) {
	res, err := jsontransform.TransformString(
		`{"a": 1, "b": [1, 2, 3]}`,
		`{"$remove:b": null}`)
	require.NoError(t, err)
	require.Empty(t, res.Errors)

	assert.Equal(t, `{"a":1}`, oj.JSON(res.Document, &ojg.Options{Sort: true}))
}

func mustParse(t *testing.T, s string) any {
	t.Helper()
	v, err := oj.ParseString(s)
	require.NoError(t, err)
	return v
}

// ---- test-only commands ----

type redactCommand struct {
	path jsontransform.Path
}

func newRedact(target jsontransform.Path, _ any) jsontransform.Command {
	return &redactCommand{path: target}
}

// Apply implements jsontransform.Command.
func (c *redactCommand) Apply(target *jsontransform.Target, ctx *jsontransform.Context) {
	if _, ok := target.Resolve(c.path); !ok {
		ctx.Fail(c.path, fmt.Errorf("%w: nothing to redact", jsontransform.ErrPathNotFound))
		return
	}
	mask, _ := ctx.State.(string)
	if mask == "" {
		mask = "[redacted]"
	}
	target.Replace(c.path, mask)
}
