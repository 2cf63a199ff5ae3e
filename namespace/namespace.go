// Package namespace provides the object model for namespace grafting: modules
// and classes treated as containers of named members, with an explicit
// registry implementation standing in for in-place type mutation.
package namespace

import (
	"strings"
	"sync/atomic"
)

// Member is a named entry directly owned by a Namespace. Exactly one of Leaf
// or Container is set; a member with neither (or both) cannot be classified
// and is skipped by introspection. Origin holds the dotted path of the scope
// that defined the member; an empty origin means the owner itself.
type Member struct {
	Name      string
	Leaf      any
	Container Namespace
	Origin    string
}

// IsContainer reports whether the member is a nested namespace.
func (m *Member) IsContainer() bool {
	return m.Container != nil
}

// IsLeaf reports whether the member holds a direct value or callable.
func (m *Member) IsLeaf() bool {
	return m.Container == nil && m.Leaf != nil
}

// Namespace is the capability interface shared by modules and classes.
// Members and Lookup expose only directly owned members, never inherited or
// re-exported ones.
type Namespace interface {
	Name() string

	// Path returns the qualified dotted path of the namespace.
	Path() string

	Kind() Kind

	// ID returns a process-unique identity used for visited tracking.
	ID() uint64

	Members() []Member

	Lookup(name string) (Member, bool)
}

// Mutable extends Namespace with the primitive mutations a patch pass needs.
type Mutable interface {
	Namespace

	// SetLeaf binds value under name, overwriting any existing member.
	SetLeaf(name string, value any)

	// Attach binds a nested namespace under name, overwriting any existing
	// member.
	Attach(name string, child Namespace)
}

// Join appends a member name to a dotted path.
func Join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

var idSeq uint64

// NextID issues a process-unique namespace identity. Adapters providing their
// own Namespace implementations use it to satisfy ID.
func NextID() uint64 {
	return atomic.AddUint64(&idSeq, 1)
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '.'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
