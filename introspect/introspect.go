// Package introspect enumerates the directly owned members of a namespace and
// classifies them for merging. The defining-scope filter keeps inherited,
// re-exported and third-party symbols out of the merge.
package introspect

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/viant/grafter/namespace"
)

// Classification describes how a member participates in a merge.
type Classification int

const (
	// Leaf members hold a directly usable value or callable.
	Leaf Classification = iota
	// Container members are nested namespaces merged recursively.
	Container
	// Unsupported members cannot be classified and are skipped with a report.
	Unsupported
)

// Classify tags a member as leaf, container or unsupported. A member claiming
// to be both at once is as unclassifiable as one that is neither.
func Classify(m namespace.Member) Classification {
	switch {
	case m.Container != nil && m.Leaf != nil:
		return Unsupported
	case m.Container != nil:
		return Container
	case m.Leaf != nil:
		return Leaf
	default:
		return Unsupported
	}
}

// Owned applies the defining-scope rule: a member belongs to ns when its
// origin is the namespace path itself or, for containers, a path nested under
// it. Members carrying no origin metadata are treated as owned. The rule
// binds module namespaces only: everything in a class table was put there
// deliberately, including shared containers defined elsewhere.
func Owned(ns namespace.Namespace, m namespace.Member) bool {
	if ns.Kind() == namespace.KindClass {
		return true
	}
	if m.Origin == "" || m.Origin == ns.Path() {
		return true
	}
	if m.Container != nil && strings.HasPrefix(m.Origin, ns.Path()+".") {
		return true
	}
	return false
}

// Introspector enumerates namespaces, optionally caching results for
// namespaces that are immutable for the lifetime of the introspector (the
// source side of a patch). Never share a caching introspector with mutable
// namespaces: stale enumerations would be served after mutation.
type Introspector struct {
	cacheSize int
	cache     *lru.Cache[uint64, []namespace.Member]
}

// Option configures an Introspector.
type Option func(*Introspector)

// WithCache caches enumerations in an LRU of the given size, keyed by
// namespace identity. Sizes below one disable caching.
func WithCache(size int) Option {
	return func(i *Introspector) {
		i.cacheSize = size
	}
}

// New creates an Introspector.
func New(options ...Option) *Introspector {
	result := &Introspector{}
	for _, option := range options {
		option(result)
	}
	if result.cacheSize > 0 {
		// lru.New only fails for non-positive sizes
		result.cache, _ = lru.New[uint64, []namespace.Member](result.cacheSize)
	}
	return result
}

// Enumerate returns the members of ns that pass the defining-scope filter.
// Unsupported members are retained so the caller can report them; filtering
// only removes members ns does not own.
func (i *Introspector) Enumerate(ns namespace.Namespace) []namespace.Member {
	if i.cache != nil {
		if members, ok := i.cache.Get(ns.ID()); ok {
			return members
		}
	}
	all := ns.Members()
	owned := make([]namespace.Member, 0, len(all))
	for _, member := range all {
		if Owned(ns, member) {
			owned = append(owned, member)
		}
	}
	if i.cache != nil {
		i.cache.Add(ns.ID(), owned)
	}
	return owned
}
