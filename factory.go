package jsontransform

import "strings"

// buildCommand decides whether one object property is a command key and, if
// so, constructs the command. at is the path of the object holding the
// property. A nil return means the property is ordinary data: no recognized
// prefix, or a prefixed code nobody registered.
func buildCommand(reg *Registry, key string, argument any, at Path) Command {
	head, name, _ := strings.Cut(key, nameSeparator)
	if !strings.HasPrefix(head, BuiltinPrefix) && !strings.HasPrefix(head, ExtensionPrefix) {
		return nil
	}
	ctor, ok := reg.lookup(head)
	if !ok {
		return nil
	}
	target := at
	if name != "" {
		target = at.Child(name)
	}
	return ctor(target, argument)
}
