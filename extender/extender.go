// Package extender implements the greedy path-extension loop (spec.md §4.E):
// alternately grow a path forward and backward, one chooser-selected vertex
// at a time, tracking the best-scoring prefix reached in each direction.
//
// The reference implementation has a known defect: its backward loop is guarded by a stray semicolon, so the
// loop body runs unconditionally once per iteration regardless of the
// chooser's result, while the forward loop is not. This Go port gives both
// directions the identical loop shape the forward direction always had.
package extender

import (
	"github.com/wangdi2014/SibeliaZ/chooser"
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/pathwalk"
)

// Result reports the best-scoring extent reached while growing a path: the
// right/left body sizes at which path.Score(true) peaked, and that peak
// score itself. bestScore is shared across both directions, matching the
// reference implementation's single best_score threaded through forward and
// then backward extension.
type Result struct {
	BestRightSize int
	BestLeftSize  int
	BestScore     int64
}

// Run grows path forward, clips it back to the best-scoring right size,
// then grows it backward, clipping being deferred to the caller (the
// finalizer rebuilds a fresh truncated path from the reported sizes rather
// than mutating path again). lookingDepth and maxBranchSize are passed
// straight through to the chooser; minBlockSize derives the minRun length
// budget the same way the reference implementation does.
func Run(path *pathwalk.Path, lookingDepth, maxBranchSize, minBlockSize int64) Result {
	minRun := 2 * max64(minBlockSize, maxBranchSize)

	bestScore := int64(0)
	bestRightSize := path.RightSize()
	bestLeftSize := path.LeftSize()

	growDirection(path, true, lookingDepth, maxBranchSize, minRun, &bestScore, &bestRightSize)
	clipToRightSize(path, bestRightSize)
	growDirection(path, false, lookingDepth, maxBranchSize, minRun, &bestScore, &bestLeftSize)

	return Result{BestRightSize: bestRightSize, BestLeftSize: bestLeftSize, BestScore: bestScore}
}

// growDirection repeatedly calls tryExtendOnce in one direction. Each round
// snapshots the path's middle length, then keeps extending while the
// chooser keeps succeeding and the path has grown by no more than minRun
// since the snapshot; the round (and the outer loop) stops the first time a
// round produces no positive-scoring growth at all.
func growDirection(path *pathwalk.Path, forward bool, lookingDepth, maxBranchSize, minRun int64, bestScore *int64, bestSize *int) {
	for {
		prevLength := path.MiddlePathLength()
		positive := false
		ret := true

		for {
			ret = tryExtendOnce(path, forward, lookingDepth, maxBranchSize, bestScore, bestSize)
			if !ret {
				break
			}
			if path.Score(true) > 0 {
				positive = true
			}
			if path.MiddlePathLength()-prevLength > minRun {
				break
			}
		}

		if !ret || !positive {
			return
		}
	}
}

// tryExtendOnce asks the chooser for the next winning vertex, then pushes
// one edge at a time from the chooser's origin iterator until that vertex is
// reached, updating bestScore/bestSize after every successful push. It
// returns whether at least one push succeeded.
func tryExtendOnce(path *pathwalk.Path, forward bool, lookingDepth, maxBranchSize int64, bestScore *int64, bestSize *int) bool {
	origin, target, ok := chooser.Choose(path, forward, lookingDepth, maxBranchSize)
	if !ok {
		return false
	}

	success := false
	it := origin
	for it.VertexID() != target {
		var edge junction.Edge
		if forward {
			edge = it.OutgoingEdge()
		} else {
			edge = it.IngoingEdge()
		}

		var pushed bool
		if forward {
			pushed = path.PushBack(edge)
		} else {
			pushed = path.PushFront(edge)
		}
		if !pushed {
			break
		}
		success = true

		if score := path.Score(true); score > *bestScore {
			*bestScore = score
			if forward {
				*bestSize = path.RightSize()
			} else {
				*bestSize = path.LeftSize()
			}
		}

		if forward {
			it = it.Next()
		} else {
			it = it.Prev()
		}
	}

	return success
}

// clipToRightSize rebuilds path from scratch, re-pushing only its first
// bestRightSize right-body edges, discarding any growth beyond the
// best-scoring point reached during forward extension before backward
// extension begins (spec.md §4.E "the path is clipped to the best right
// size").
func clipToRightSize(path *pathwalk.Path, bestRightSize int) {
	origin := path.Origin()

	saved := make([]junction.Edge, bestRightSize)
	for i := 0; i < bestRightSize; i++ {
		saved[i] = path.RightPoint(i).Edge
	}

	path.Clear()
	path.Init(origin)
	for _, e := range saved {
		if !path.PushBack(e) {
			break
		}
	}
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
