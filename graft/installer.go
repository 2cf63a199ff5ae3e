package graft

import (
	"fmt"

	"github.com/viant/grafter/namespace"
)

// Hook customizes a freshly created container before it is attached to its
// parent, e.g. choosing base classes for an environment. A nil hook is a
// no-op; an error skips creation of that subtree without failing the pass.
type Hook func(parent namespace.Mutable, created namespace.Mutable) error

// Installer performs the primitive mutations of a patch pass: binding leaves
// and creating empty containers.
type Installer struct {
	hook Hook
}

// InstallLeaf binds value under name on target, silently overwriting any
// existing member. It reports whether an existing member was overwritten.
func (i *Installer) InstallLeaf(target namespace.Mutable, name string, value any) bool {
	_, overwrote := target.Lookup(name)
	target.SetLeaf(name, value)
	return overwrote
}

// CreateContainer instantiates an empty namespace of the given kind, lets the
// hook customize it, attaches it to parent under name and returns it.
func (i *Installer) CreateContainer(kind namespace.Kind, name string, parent namespace.Mutable) (namespace.Mutable, error) {
	path := namespace.Join(parent.Path(), name)
	var created namespace.Mutable
	switch kind {
	case namespace.KindModule:
		created = namespace.NewModule(path)
	case namespace.KindClass:
		created = namespace.NewClass(path)
	default:
		return nil, fmt.Errorf("cannot create container of kind %v at %s", kind, path)
	}
	if i.hook != nil {
		if err := i.hook(parent, created); err != nil {
			return nil, &HookError{Path: path, Err: err}
		}
	}
	parent.Attach(name, created)
	return created, nil
}
