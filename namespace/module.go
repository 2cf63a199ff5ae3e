package namespace

// Module is a registry-backed module namespace. Members mutate in place; the
// ordered slice keeps insertion order so enumeration is stable.
type Module struct {
	name    string
	path    string
	id      uint64
	members []Member
	index   map[string]int
}

// NewModule creates an empty module at the given dotted path.
func NewModule(path string) *Module {
	return &Module{
		name:  baseName(path),
		path:  path,
		id:    NextID(),
		index: make(map[string]int),
	}
}

func (m *Module) Name() string { return m.name }

func (m *Module) Path() string { return m.path }

func (m *Module) Kind() Kind { return KindModule }

func (m *Module) ID() uint64 { return m.id }

// Members returns a copy of the directly owned members.
func (m *Module) Members() []Member {
	out := make([]Member, len(m.members))
	copy(out, m.members)
	return out
}

// Lookup retrieves a directly owned member by name.
func (m *Module) Lookup(name string) (Member, bool) {
	if idx, ok := m.index[name]; ok && idx < len(m.members) {
		return m.members[idx], true
	}
	return Member{}, false
}

// SetLeaf binds value under name, overwriting any existing member of any
// shape.
func (m *Module) SetLeaf(name string, value any) {
	m.put(Member{Name: name, Leaf: value, Origin: m.path})
}

// Attach binds a nested namespace under name, overwriting any existing
// member.
func (m *Module) Attach(name string, child Namespace) {
	m.put(Member{Name: name, Container: child, Origin: child.Path()})
}

func (m *Module) put(member Member) {
	if idx, ok := m.index[member.Name]; ok {
		m.members[idx] = member
		return
	}
	m.members = append(m.members, member)
	m.index[member.Name] = len(m.members) - 1
}
