package graft

import (
	"errors"

	"github.com/viant/grafter/introspect"
	"github.com/viant/grafter/namespace"
)

// merge walks one source container, resolving each member fully before moving
// to its sibling. Sibling order does not affect the outcome: leaf installs
// and subtree merges touch disjoint target members.
func (m *merger) merge(source namespace.Namespace, target namespace.Mutable, path string) {
	if _, ok := m.counterparts[source.ID()]; !ok {
		m.counterparts[source.ID()] = target
	}
	m.report.ContainersMerged++
	m.logger.Debug("merging", "source", source.Path(), "target", target.Path())

	for _, member := range m.intr.Enumerate(source) {
		at := namespace.Join(path, member.Name)
		switch introspect.Classify(member) {
		case introspect.Unsupported:
			m.recordUnsupported(at)
		case introspect.Leaf:
			if m.installer.InstallLeaf(target, member.Name, member.Leaf) {
				m.report.LeavesOverwritten++
			}
			m.report.LeavesInstalled++
			m.logger.Debug("installed leaf", "path", at)
		case introspect.Container:
			m.mergeContainer(member, target, at)
		}
	}
}

func (m *merger) mergeContainer(member namespace.Member, target namespace.Mutable, at string) {
	sub := member.Container
	existing, ok := target.Lookup(member.Name)
	switch {
	case ok && existing.Container != nil && existing.Container.Kind() == sub.Kind():
		dst, mutable := existing.Container.(namespace.Mutable)
		if !mutable {
			m.recordConflict(&KindConflictError{
				Path:       at,
				SourceKind: sub.Kind(),
				TargetKind: existing.Container.Kind(),
				ReadOnly:   true,
			})
			return
		}
		if m.visited.seen(sub, dst) {
			return
		}
		m.visited.add(sub, dst)
		m.merge(sub, dst, at)
	case ok:
		conflict := &KindConflictError{Path: at, SourceKind: sub.Kind()}
		if existing.Container != nil {
			conflict.TargetKind = existing.Container.Kind()
		} else {
			conflict.TargetLeaf = true
		}
		m.recordConflict(conflict)
	default:
		// A source container materialized earlier in this pass (a shared
		// child, or a back-reference forming a cycle) is linked, not
		// re-created, so the target mirrors the source's sharing.
		if counterpart, ok := m.counterparts[sub.ID()]; ok {
			target.Attach(member.Name, counterpart)
			m.report.ContainersLinked++
			m.logger.Debug("linked container", "path", at, "target", counterpart.Path())
			return
		}
		created, err := m.installer.CreateContainer(sub.Kind(), member.Name, target)
		if err != nil {
			m.report.SubtreesSkipped++
			var hookErr *HookError
			if errors.As(err, &hookErr) {
				m.report.HookFailures = append(m.report.HookFailures, hookErr)
			}
			m.logger.Warn("container creation skipped", "path", at, "err", err)
			return
		}
		m.report.ContainersCreated++
		m.logger.Debug("created container", "path", at, "kind", sub.Kind())
		m.visited.add(sub, created)
		m.merge(sub, created, at)
	}
}

func (m *merger) recordConflict(conflict *KindConflictError) {
	m.report.SubtreesSkipped++
	if m.policy == OnConflictSkip {
		return
	}
	m.report.Conflicts = append(m.report.Conflicts, conflict)
	m.logger.Warn("conflict", "err", conflict)
}

func (m *merger) recordUnsupported(at string) {
	unsupported := &UnsupportedMemberError{Path: at}
	m.report.Unsupported = append(m.report.Unsupported, unsupported)
	m.logger.Warn("skipping member", "err", unsupported)
}
