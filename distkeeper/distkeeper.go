// Package distkeeper implements the Distance Keeper (spec.md §4.B): a
// per-path map from vertex id to signed distance from the path's origin.
//
// A Keeper is owned exclusively by one Path and is never shared across
// goroutines, so it needs no internal locking (spec.md §5 "Memory ownership").
package distkeeper

import "github.com/wangdi2014/SibeliaZ/junction"

// Keeper maps vertex id -> signed distance from a path's origin. A path uses
// it to reject cycles (pushing an edge whose far endpoint already has a
// distance set fails) and to compute flank sizes for scoring.
type Keeper struct {
	dist map[junction.VertexID]int64
}

// New returns an empty Keeper.
func New() *Keeper {
	return &Keeper{dist: make(map[junction.VertexID]int64)}
}

// Set records d as the distance of v from the path's origin.
func (k *Keeper) Set(v junction.VertexID, d int64) {
	k.dist[v] = d
}

// Unset removes any recorded distance for v.
func (k *Keeper) Unset(v junction.VertexID) {
	delete(k.dist, v)
}

// Get returns the recorded distance of v, or 0 if none is set.
func (k *Keeper) Get(v junction.VertexID) int64 {
	return k.dist[v]
}

// IsSet reports whether v currently has a recorded distance.
func (k *Keeper) IsSet(v junction.VertexID) bool {
	_, ok := k.dist[v]

	return ok
}

// Clear empties the keeper, as when a path is cleared.
func (k *Keeper) Clear() {
	k.dist = make(map[junction.VertexID]int64)
}
