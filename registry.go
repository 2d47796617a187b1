package jsontransform

import (
	"fmt"
	"sync"
)

// Command key prefixes. Built-in commands are spelled "$code", caller
// registered extensions "@code". Either form takes an optional ":name" suffix
// naming the sibling property the command targets.
const (
	BuiltinPrefix   = "$"
	ExtensionPrefix = "@"
)

const nameSeparator = ":"

// Registry maps formatted command codes, prefix included, to their
// constructors. A Registry is safe for concurrent use; lookups during a
// transformation proceed under a read lock while registrations take the
// write lock.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns a registry preloaded with the built-in commands. Use it
// with WithRegistry to keep registrations scoped instead of process-wide.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor)}
	r.ctors[BuiltinPrefix+"copy"] = newCopy
	r.ctors[BuiltinPrefix+"foreach"] = newForEach
	r.ctors[BuiltinPrefix+"remove"] = newRemove
	r.ctors[BuiltinPrefix+"setnull"] = newSetNull
	r.ctors[BuiltinPrefix+"union"] = newUnion
	return r
}

// Register installs a constructor for the extension command "@code". The code
// must be one or more lowercase ASCII letters; anything else reports
// ErrInvalidCode. Registering an existing code replaces it.
func (r *Registry) Register(code string, ctor Constructor) error {
	if !validCode(code) {
		return fmt.Errorf("%w: %q must be one or more lowercase letters", ErrInvalidCode, code)
	}
	if ctor == nil {
		return fmt.Errorf("%w: %q has no constructor", ErrInvalidCode, code)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[ExtensionPrefix+code] = ctor
	return nil
}

func (r *Registry) lookup(formatted string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[formatted]
	return ctor, ok
}

func validCode(code string) bool {
	if code == "" {
		return false
	}
	for _, c := range code {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// RegisterTransformation installs a custom command in the process-wide
// registry used by Transform when no WithRegistry option is given. Once
// registered, "@code" and "@code:name" keys in any transformation document
// invoke the constructor.
func RegisterTransformation(code string, ctor Constructor) error {
	return defaultRegistry().Register(code, ctor)
}
