package graft

import "github.com/viant/grafter/namespace"

// visitedSet tracks (source, target) container identity pairs already merged.
// Membership is checked before every recursion, which bounds the walk on
// cyclic or shared-reference trees: each distinct pair is processed at most
// once per pass.
type visitedSet map[pair]struct{}

type pair struct {
	source uint64
	target uint64
}

func (v visitedSet) seen(source, target namespace.Namespace) bool {
	_, ok := v[pair{source: source.ID(), target: target.ID()}]
	return ok
}

func (v visitedSet) add(source, target namespace.Namespace) {
	v[pair{source: source.ID(), target: target.ID()}] = struct{}{}
}
