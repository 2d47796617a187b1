package jsontransform

import (
	"fmt"
	"strings"
)

// Path locates one node in a document. String elements name object
// properties and int elements index array members. The zero value addresses
// the document root.
type Path []any

// Child returns a copy of p extended by an object property name.
func (p Path) Child(name string) Path {
	return p.extend(name)
}

// Index returns a copy of p extended by an array index.
func (p Path) Index(i int) Path {
	return p.extend(i)
}

func (p Path) extend(seg any) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = seg
	return next
}

// String renders the path in JSONPath notation, so Path{"a", 0, "b c"}
// prints as $.a[0]['b c'].
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, seg := range p {
		switch s := seg.(type) {
		case string:
			if plainName(s) {
				b.WriteByte('.')
				b.WriteString(s)
			} else {
				fmt.Fprintf(&b, "['%s']", s)
			}
		case int:
			fmt.Fprintf(&b, "[%d]", s)
		default:
			fmt.Fprintf(&b, "[%v]", seg)
		}
	}
	return b.String()
}

func plainName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
