// Package finalizer implements TryFinalize (spec.md §4.F): turn a grown
// path's best-scoring prefix into a committed, numbered block, or abandon it.
//
// Grounded on the reference implementation's TryFinalizeBlock: acquire every
// instance's chromosome range lock in ascending chromosome order (spec.md §5
// "Locks nest only in the sorted order dictated by the finalizer",
// guaranteeing deadlock freedom across concurrent finalizers), then rebuild a
// fresh path truncated to the best right/left sizes the extender reported,
// recheck its score under lock, and only then commit.
package finalizer

import (
	"sort"

	"github.com/wangdi2014/SibeliaZ/block"
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/pathwalk"
)

// minGoodInstances is the fewest good instances a chain must retain to be
// worth reporting as a block: a "collinear" block needs at least two
// occurrences to align against one another.
const minGoodInstances = 2

// TryFinalize locks path's touched chromosomes, releases path's own claims,
// rebuilds a fresh path truncated to its best-scoring bestRightSize/
// bestLeftSize extent, rechecks that rebuilt path's score under lock, and
// commits it. It returns the committed instances and true on success, or
// (nil, false) if the truncated path no longer clears minBlockSize once
// rebuilt — the caller is responsible for clearing path afterwards either
// way.
func TryFinalize(store *junction.Store, path *pathwalk.Path, blockID int64, minBlockSize int64, bestRightSize, bestLeftSize int) ([]block.Instance, bool) {
	locked := path.GoodInstances()
	if len(locked) < minGoodInstances {
		return nil, false
	}

	chrs := distinctChromosomesAscending(locked)

	hint := junction.NewLockHint()
	for _, inst := range chrs {
		store.LockRange(inst, inst, hint)
	}
	defer func() {
		for _, inst := range chrs {
			store.UnlockRange(inst, inst, hint)
		}
	}()

	// path's own claims must be released before the rebuilt path below can
	// reclaim the same junctions; the chromosome locks already held keep
	// this safe against other finalizers on the same range.
	path.ReleaseClaims()

	rebuilt := pathwalk.New(store, path.MaxBranchSize(), minBlockSize, path.MaxFlankingSize())
	rebuilt.Init(path.Origin())
	for i := 0; i < bestRightSize; i++ {
		if !rebuilt.PushBack(path.RightPoint(i).Edge) {
			break
		}
	}
	for i := 0; i < bestLeftSize; i++ {
		if !rebuilt.PushFront(path.LeftPoint(i).Edge) {
			break
		}
	}
	defer rebuilt.Clear()

	good := rebuilt.GoodInstances()
	if len(good) < minGoodInstances {
		return nil, false
	}

	sort.Slice(good, func(i, j int) bool {
		if good[i].Front.ChrID() != good[j].Front.ChrID() {
			return good[i].Front.ChrID() < good[j].Front.ChrID()
		}

		return good[i].Front.Index() < good[j].Front.Index()
	})

	var score int64
	goodUnderLock := 0
	for _, inst := range good {
		l, s := rebuilt.InstanceScore(inst)
		score += s
		if l >= minBlockSize {
			goodUnderLock++
		}
	}

	if goodUnderLock < minGoodInstances || score < minBlockSize {
		return nil, false
	}

	out := make([]block.Instance, 0, len(good))
	for _, inst := range good {
		l, _ := rebuilt.InstanceScore(inst)
		if l < minBlockSize {
			continue
		}

		signedID := blockID
		if !inst.Front.IsPositiveStrand() {
			signedID = -blockID
		}

		for it := inst.Front; ; it = it.Next() {
			// The assignment table's committed state is just "taken, by
			// blockID" (strand is not representable there: InUse is the
			// sentinel -1, so a negative signedID could collide with it).
			// Strand lives on block.Instance.BlockID instead.
			it.Commit(blockID)
			it.MarkUsed()
			if it.Index() == inst.Back.Index() {
				break
			}
		}

		out = append(out, block.Instance{
			BlockID: signedID,
			Chr:     inst.Front.ChrID(),
			Start:   inst.Front.Index(),
			End:     inst.Back.Index() + 1,
		})
	}

	if len(out) < minGoodInstances {
		return nil, false
	}

	return out, true
}

// distinctChromosomesAscending returns one representative iterator per
// distinct chromosome touched by good, in ascending chromosome-id order, so
// the caller locks each chromosome's range mutex exactly once: sync.Mutex is
// not reentrant, and a block can easily have two instances on the same
// chromosome (e.g. a tandem repeat).
func distinctChromosomesAscending(good []pathwalk.Instance) []junction.Iterator {
	seen := make(map[int]junction.Iterator, len(good))
	for _, inst := range good {
		chr := inst.Front.ChrID()
		if _, ok := seen[chr]; !ok {
			seen[chr] = inst.Front
		}
	}

	out := make([]junction.Iterator, 0, len(seen))
	for _, it := range seen {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChrID() < out[j].ChrID() })

	return out
}
