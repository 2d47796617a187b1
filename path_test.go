package jsontransform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathString(t *testing.T) {
	cases := []struct {
		path Path
		want string
	}{
		{Path{}, "$"},
		{nil, "$"},
		{Path{"a"}, "$.a"},
		{Path{"a", "b"}, "$.a.b"},
		{Path{"a", 0, "b"}, "$.a[0].b"},
		{Path{"items", 12}, "$.items[12]"},
		{Path{"odd key"}, "$['odd key']"},
		{Path{"a.b"}, "$['a.b']"},
		{Path{"0leading"}, "$['0leading']"},
		{Path{"snake_case", "CamelCase", "x9"}, "$.snake_case.CamelCase.x9"},
		{Path{""}, "$['']"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.path.String())
	}
}

func TestPathExtendCopies(t *testing.T) {
	base := Path{"a"}
	left := base.Child("b")
	right := base.Index(2)

	assert.Equal(t, "$.a.b", left.String())
	assert.Equal(t, "$.a[2]", right.String())
	assert.Equal(t, "$.a", base.String(), "extending must never mutate the base")

	// Extending the same base twice cannot share backing storage.
	first := base.Child("x").Child("y")
	second := base.Child("x").Child("z")
	assert.Equal(t, "$.a.x.y", first.String())
	assert.Equal(t, "$.a.x.z", second.String())
}
