package graft

import (
	"fmt"

	"github.com/viant/grafter/namespace"
)

// RootTypeError reports that a patch root is not a usable module or class
// namespace. It is fatal: Patch returns it immediately with no Report.
type RootTypeError struct {
	Role   string // "source" or "target"
	Reason string
}

func (e *RootTypeError) Error() string {
	return fmt.Sprintf("invalid %s root: %s", e.Role, e.Reason)
}

// KindConflictError reports a source container colliding with a target member
// of incompatible shape. Non-fatal: the subtree is skipped and siblings
// continue.
type KindConflictError struct {
	Path       string
	SourceKind namespace.Kind
	TargetKind namespace.Kind
	TargetLeaf bool
	ReadOnly   bool
}

func (e *KindConflictError) Error() string {
	switch {
	case e.TargetLeaf:
		return fmt.Sprintf("kind conflict at %s: source %s collides with target leaf", e.Path, e.SourceKind)
	case e.ReadOnly:
		return fmt.Sprintf("kind conflict at %s: target %s is read-only", e.Path, e.TargetKind)
	default:
		return fmt.Sprintf("kind conflict at %s: source %s collides with target %s", e.Path, e.SourceKind, e.TargetKind)
	}
}

// HookError reports a hook rejecting a freshly created container. Non-fatal:
// the subtree is skipped and siblings continue.
type HookError struct {
	Path string
	Err  error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook rejected container %s: %v", e.Path, e.Err)
}

func (e *HookError) Unwrap() error { return e.Err }

// UnsupportedMemberError reports a source member the introspector could not
// classify. Non-fatal: the member is skipped.
type UnsupportedMemberError struct {
	Path string
}

func (e *UnsupportedMemberError) Error() string {
	return fmt.Sprintf("unsupported member at %s", e.Path)
}
