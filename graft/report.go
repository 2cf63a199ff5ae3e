package graft

import "fmt"

// Report aggregates the outcome of a single Patch pass. Non-fatal findings
// (conflicts, unsupported members, hook failures) are collected here in
// addition to any
// real-time logging.
type Report struct {
	LeavesInstalled   int
	LeavesOverwritten int
	ContainersCreated int
	// ContainersLinked counts shared or cyclic source containers re-attached
	// to their already-materialized target counterpart.
	ContainersLinked int
	ContainersMerged int
	SubtreesSkipped  int

	Conflicts    []*KindConflictError
	Unsupported  []*UnsupportedMemberError
	HookFailures []*HookError

	// TargetFingerprint digests the target tree after the pass; equal
	// fingerprints across repeated passes witness idempotence.
	TargetFingerprint uint64
}

// Clean reports whether the pass completed without skipped subtrees or
// unsupported members.
func (r *Report) Clean() bool {
	return r.SubtreesSkipped == 0 && len(r.Conflicts) == 0 && len(r.Unsupported) == 0 &&
		len(r.HookFailures) == 0
}

// Summary renders a one-line account of the pass.
func (r *Report) Summary() string {
	return fmt.Sprintf("installed %d leaves (%d overwritten), created %d containers, merged %d, skipped %d subtrees, %d conflicts, %d unsupported, %d hook failures",
		r.LeavesInstalled, r.LeavesOverwritten, r.ContainersCreated, r.ContainersMerged,
		r.SubtreesSkipped, len(r.Conflicts), len(r.Unsupported), len(r.HookFailures))
}
