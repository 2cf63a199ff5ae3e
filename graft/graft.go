// Package graft merges an extension tree of modules and classes onto a
// separately owned target tree by recursively mirroring the source's shape:
// leaves overwrite, existing containers merge member-by-member, missing
// containers are created and deep-populated. The target's pre-existing
// members stay untouched unless the source names them.
package graft

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/viant/grafter/introspect"
	"github.com/viant/grafter/namespace"
)

// OnConflict selects how non-fatal conflicts are surfaced.
type OnConflict int

const (
	// OnConflictReport records conflicts on the Report and logs them.
	OnConflictReport OnConflict = iota
	// OnConflictSkip drops conflicting subtrees silently; only the skip
	// counter moves.
	OnConflictSkip
)

// enumerationCacheSize bounds the source-side enumeration cache; shared
// subtrees reached through several parents enumerate once.
const enumerationCacheSize = 1024

// Option configures a patch pass.
type Option func(*merger)

// WithOnConflict sets the conflict policy; the default is OnConflictReport.
func WithOnConflict(policy OnConflict) Option {
	return func(m *merger) {
		m.policy = policy
	}
}

// WithHook installs the platform hook consulted when containers are created.
func WithHook(hook Hook) Option {
	return func(m *merger) {
		m.installer.hook = hook
	}
}

// WithLogger routes per-member progress to the given logger; by default
// progress is discarded.
func WithLogger(logger *log.Logger) Option {
	return func(m *merger) {
		m.logger = logger
	}
}

// WithIntrospector substitutes the source-side introspector, e.g. to share an
// enumeration cache across passes over the same immutable source.
func WithIntrospector(intr *introspect.Introspector) Option {
	return func(m *merger) {
		m.intr = intr
	}
}

type merger struct {
	intr      *introspect.Introspector
	installer *Installer
	visited   visitedSet
	// counterparts maps a source container identity to the target container
	// it first merged into; consulted when a shared or cyclic source subtree
	// resurfaces at a path the target lacks.
	counterparts map[uint64]namespace.Mutable
	policy       OnConflict
	logger       *log.Logger
	report       *Report
}

// Patch merges source onto target in a single synchronous pass and returns
// the aggregated Report. Source namespaces are read-only for the duration of
// the call; the target registry mutates in place and must not be observed or
// mutated concurrently. Typical usage is a one-shot call during
// initialization.
//
// Both roots must be module- or class-kinded and of the same kind, and the
// target must be mutable; otherwise a *RootTypeError is returned immediately.
func Patch(source, target namespace.Namespace, options ...Option) (*Report, error) {
	m := &merger{
		installer:    &Installer{},
		visited:      visitedSet{},
		counterparts: map[uint64]namespace.Mutable{},
		policy:       OnConflictReport,
		logger:       log.New(io.Discard),
		report:       &Report{},
	}
	for _, option := range options {
		option(m)
	}
	if m.intr == nil {
		m.intr = introspect.New(introspect.WithCache(enumerationCacheSize))
	}

	if err := checkRoot("source", source); err != nil {
		return nil, err
	}
	if err := checkRoot("target", target); err != nil {
		return nil, err
	}
	if source.Kind() != target.Kind() {
		return nil, &RootTypeError{Role: "target", Reason: "kind differs from source root"}
	}
	mutable, ok := target.(namespace.Mutable)
	if !ok {
		return nil, &RootTypeError{Role: "target", Reason: "namespace is read-only"}
	}

	m.visited.add(source, target)
	m.merge(source, mutable, source.Path())

	if fingerprint, err := namespace.Fingerprint(target); err == nil {
		m.report.TargetFingerprint = fingerprint
	}
	return m.report, nil
}

func checkRoot(role string, ns namespace.Namespace) error {
	if ns == nil {
		return &RootTypeError{Role: role, Reason: "namespace is nil"}
	}
	if kind := ns.Kind(); kind != namespace.KindModule && kind != namespace.KindClass {
		return &RootTypeError{Role: role, Reason: "not a module or class namespace"}
	}
	return nil
}
