package namespace

// Class is a registry-backed class namespace: its member table is the patch
// table consulted by instance dispatch. Bases provide inherited resolution
// without ever appearing among the directly owned members.
type Class struct {
	name    string
	path    string
	id      uint64
	bases   []*Class
	members []Member
	index   map[string]int
}

// NewClass creates an empty class at the given dotted path.
func NewClass(path string, bases ...*Class) *Class {
	return &Class{
		name:  baseName(path),
		path:  path,
		id:    NextID(),
		bases: bases,
		index: make(map[string]int),
	}
}

func (c *Class) Name() string { return c.name }

func (c *Class) Path() string { return c.path }

func (c *Class) Kind() Kind { return KindClass }

func (c *Class) ID() uint64 { return c.id }

// Bases returns the base classes consulted by Resolve.
func (c *Class) Bases() []*Class {
	out := make([]*Class, len(c.bases))
	copy(out, c.bases)
	return out
}

// AddBase appends a base class. Intended for platform hooks customizing a
// freshly created class.
func (c *Class) AddBase(base *Class) {
	c.bases = append(c.bases, base)
}

// Members returns a copy of the directly owned members; inherited members are
// not included.
func (c *Class) Members() []Member {
	out := make([]Member, len(c.members))
	copy(out, c.members)
	return out
}

// Lookup retrieves a directly owned member by name.
func (c *Class) Lookup(name string) (Member, bool) {
	if idx, ok := c.index[name]; ok && idx < len(c.members) {
		return c.members[idx], true
	}
	return Member{}, false
}

// Resolve retrieves a member by name, walking base classes depth-first when
// the class does not own it directly.
func (c *Class) Resolve(name string) (Member, bool) {
	if member, ok := c.Lookup(name); ok {
		return member, true
	}
	for _, base := range c.bases {
		if member, ok := base.Resolve(name); ok {
			return member, true
		}
	}
	return Member{}, false
}

// SetLeaf binds value under name, overwriting any existing member of any
// shape.
func (c *Class) SetLeaf(name string, value any) {
	c.put(Member{Name: name, Leaf: value, Origin: c.path})
}

// Attach binds a nested namespace under name, overwriting any existing
// member.
func (c *Class) Attach(name string, child Namespace) {
	c.put(Member{Name: name, Container: child, Origin: child.Path()})
}

func (c *Class) put(member Member) {
	if idx, ok := c.index[member.Name]; ok {
		c.members[idx] = member
		return
	}
	c.members = append(c.members, member)
	c.index[member.Name] = len(c.members) - 1
}
