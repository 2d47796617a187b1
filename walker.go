package jsontransform

import "sort"

// commandStack holds discovered commands in last-in, first-out order. The
// walker pushes in depth-first document order, so popping applies the most
// deeply nested commands first. That ordering is what lets several removes
// against the same array resolve correctly: later indexes are spliced out
// before earlier ones shift them.
type commandStack struct {
	items []Command
}

func (s *commandStack) push(c Command) {
	s.items = append(s.items, c)
}

func (s *commandStack) pop() (Command, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	c := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return c, true
}

// collect walks node depth-first, pushing a command for every matched key and
// deleting the key from the tree so it never reaches the merge. Matched
// values are command arguments and are not walked; nested commands inside a
// $foreach descriptor are collected by the nested run that consumes it.
// Object properties are visited in sorted key order to keep discovery, and
// therefore application, deterministic.
func collect(reg *Registry, node any, at Path, stack *commandStack) {
	switch n := node.(type) {
	case map[string]any:
		for _, key := range sortedKeys(n) {
			value := n[key]
			if cmd := buildCommand(reg, key, value, at); cmd != nil {
				stack.push(cmd)
				delete(n, key)
				continue
			}
			collect(reg, value, at.Child(key), stack)
		}
	case []any:
		for i, el := range n {
			collect(reg, el, at.Index(i), stack)
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
