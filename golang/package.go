package golang

import (
	"strings"

	"github.com/viant/grafter/namespace"
)

// pkgNamespace is the read-only namespace backing a loaded Go package or
// named type. It deliberately does not implement namespace.Mutable.
type pkgNamespace struct {
	name    string
	path    string
	kind    namespace.Kind
	id      uint64
	members []namespace.Member
	index   map[string]int
}

func newPkgNamespace(path string, kind namespace.Kind) *pkgNamespace {
	name := path
	if idx := strings.LastIndexByte(path, '.'); idx >= 0 {
		name = path[idx+1:]
	}
	return &pkgNamespace{
		name:  name,
		path:  path,
		kind:  kind,
		id:    namespace.NextID(),
		index: make(map[string]int),
	}
}

func (p *pkgNamespace) Name() string { return p.name }

func (p *pkgNamespace) Path() string { return p.path }

func (p *pkgNamespace) Kind() namespace.Kind { return p.kind }

func (p *pkgNamespace) ID() uint64 { return p.id }

func (p *pkgNamespace) Members() []namespace.Member {
	out := make([]namespace.Member, len(p.members))
	copy(out, p.members)
	return out
}

func (p *pkgNamespace) Lookup(name string) (namespace.Member, bool) {
	if idx, ok := p.index[name]; ok && idx < len(p.members) {
		return p.members[idx], true
	}
	return namespace.Member{}, false
}

func (p *pkgNamespace) addLeaf(name string, value any) {
	p.put(namespace.Member{Name: name, Leaf: value, Origin: p.path})
}

func (p *pkgNamespace) attach(child *pkgNamespace) {
	p.put(namespace.Member{Name: child.name, Container: child, Origin: child.path})
}

func (p *pkgNamespace) put(member namespace.Member) {
	if idx, ok := p.index[member.Name]; ok {
		p.members[idx] = member
		return
	}
	p.members = append(p.members, member)
	p.index[member.Name] = len(p.members) - 1
}
