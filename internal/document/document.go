// Package document implements the JSON value model the transformation engine
// edits: deep cloning, structural merging, and path-addressed access over
// parsed JSON trees (map[string]any, []any, scalars, nil).
package document

import "github.com/ohler55/ojg/alt"

// Clone returns a deep copy of v with no shared mutable state.
func Clone(v any) any {
	return alt.Dup(v)
}

// Merge overlays src onto dst in place. Object properties merge key by key,
// arrays merge element-wise by index (never concatenation), and scalars from
// src win. Two exceptions keep existing data intact:
//
//   - a src object property holding null never lands in dst, neither as an
//     overwrite nor inside a freshly created subtree; explicit nulling is a
//     command, not a merge effect. Array elements are positional, so a null
//     element keeps the dst element at that index and appends as a literal
//     null past the end.
//   - an empty src container never replaces a differently-shaped dst value
func Merge(dst *any, src any) {
	if src == nil {
		return
	}
	switch s := src.(type) {
	case map[string]any:
		d, ok := (*dst).(map[string]any)
		if !ok {
			if len(s) > 0 {
				*dst = graft(src)
			}
			return
		}
		for k, sv := range s {
			dv, exists := d[k]
			if !exists {
				if sv != nil {
					d[k] = graft(sv)
				}
				continue
			}
			Merge(&dv, sv)
			d[k] = dv
		}
	case []any:
		d, ok := (*dst).([]any)
		if !ok {
			if len(s) > 0 {
				*dst = graft(src)
			}
			return
		}
		for i, sv := range s {
			if i < len(d) {
				Merge(&d[i], sv)
			} else {
				d = append(d, graft(sv))
			}
		}
		*dst = d
	default:
		*dst = src
	}
}

// graft copies v for insertion into a merge destination, applying the same
// null policy a recursive merge would: object properties holding null are
// dropped, array positions are kept as is.
func graft(v any) any {
	switch s := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(s))
		for k, sv := range s {
			if sv == nil {
				continue
			}
			out[k] = graft(sv)
		}
		return out
	case []any:
		out := make([]any, len(s))
		for i, sv := range s {
			out[i] = graft(sv)
		}
		return out
	default:
		return v
	}
}

// Equal reports structural equality of two documents. Numbers compare by
// value across Go types, so an int64 from a JSON parse matches an int from a
// YAML parse or a float64 holding the same quantity.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !Equal(v, bvv) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	if an, ok := asFloat(a); ok {
		bn, ok := asFloat(b)
		return ok && an == bn
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
