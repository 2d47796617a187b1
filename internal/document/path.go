package document

// Path segments are string (object property) or int (array index). The
// functions below report success with a bool rather than an error so callers
// can attach their own failure context.

// Resolve walks root along path and returns the value it lands on. The second
// return is false when any step is missing, out of range, or applied to a
// value of the wrong shape. An empty path resolves to root itself.
func Resolve(root any, path []any) (any, bool) {
	cur := root
	for _, seg := range path {
		switch s := seg.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok := m[s]
			if !ok {
				return nil, false
			}
			cur = v
		case int:
			a, ok := cur.([]any)
			if !ok || s < 0 || s >= len(a) {
				return nil, false
			}
			cur = a[s]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Set writes value at path. The final object property is created when absent;
// every other step must already exist, and array indexes must be in range. An
// empty path replaces the root.
func Set(root *any, path []any, value any) bool {
	if len(path) == 0 {
		*root = value
		return true
	}
	parent, ok := Resolve(*root, path[:len(path)-1])
	if !ok {
		return false
	}
	switch last := path[len(path)-1].(type) {
	case string:
		m, ok := parent.(map[string]any)
		if !ok {
			return false
		}
		m[last] = value
		return true
	case int:
		a, ok := parent.([]any)
		if !ok || last < 0 || last >= len(a) {
			return false
		}
		a[last] = value
		return true
	}
	return false
}

// Replace writes value at path but only over a slot that already exists. It
// is Set without the create-on-absent behavior for object properties.
func Replace(root *any, path []any, value any) bool {
	if len(path) == 0 {
		*root = value
		return true
	}
	if _, ok := Resolve(*root, path); !ok {
		return false
	}
	return Set(root, path, value)
}

// Delete removes the slot at path. Object properties are deleted, array
// elements are spliced out with later elements shifting left. The root cannot
// be deleted.
func Delete(root *any, path []any) bool {
	if len(path) == 0 {
		return false
	}
	parent, ok := Resolve(*root, path[:len(path)-1])
	if !ok {
		return false
	}
	switch last := path[len(path)-1].(type) {
	case string:
		m, ok := parent.(map[string]any)
		if !ok {
			return false
		}
		if _, exists := m[last]; !exists {
			return false
		}
		delete(m, last)
		return true
	case int:
		a, ok := parent.([]any)
		if !ok || last < 0 || last >= len(a) {
			return false
		}
		a = append(a[:last], a[last+1:]...)
		// The slice header shrank, so the parent slot has to be rewritten.
		return Set(root, path[:len(path)-1], a)
	}
	return false
}
