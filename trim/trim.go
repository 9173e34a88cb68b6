// Package trim implements the output trimmer (spec.md §4.H): resolve
// overlaps left behind by independently-grown blocks, drop anything too
// short to survive trimming, and renumber what remains.
//
// Grounded on the reference implementation's SortByMultiplicity +
// post-processing pass: blocks are applied to a per-chromosome "covered"
// bitmap in descending-multiplicity order (the biggest, most-repeated
// blocks claim territory first), each instance is shrunk from both ends to
// the first not-yet-covered junction, and instances that fall below
// minBlockSize after shrinking are dropped.
package trim

import (
	"sort"

	"github.com/wangdi2014/SibeliaZ/block"
	"github.com/wangdi2014/SibeliaZ/junction"
)

// Trim resolves overlaps among blocks against store's chromosomes and
// renumbers the survivors. minBlockSize is the same threshold used during
// finalization; an instance shrunk below it is dropped, and a block left
// with fewer than two surviving instances is dropped entirely.
func Trim(store *junction.Store, blocks []block.Instance, minBlockSize int) []block.Instance {
	groups := groupByAbsID(blocks)
	order := priorityOrder(groups)

	covered := make([][]bool, store.ChrNumber())
	for c := range covered {
		covered[c] = make([]bool, len(store.ChrSequence(c))-store.K()+1)
	}

	survivors := make(map[int64][]block.Instance, len(groups))
	for _, id := range order {
		var shrunk []block.Instance
		for _, inst := range groups[id] {
			if s, ok := shrinkToUncovered(covered[inst.Chr], inst, minBlockSize); ok {
				shrunk = append(shrunk, s)
			}
		}

		// A group that won't survive contributes no output (spec.md §4.H
		// "otherwise revert the cover marks from that group"); since marks
		// are only ever applied below, once a group's survivor count is
		// known, nothing needs reverting here.
		if len(shrunk) < 2 {
			continue
		}

		for _, s := range shrunk {
			markCovered(covered[s.Chr], s)
		}
		survivors[id] = shrunk
	}

	out := make([]block.Instance, 0, len(blocks))
	nextID := int64(1)
	for _, id := range order {
		insts := survivors[id]
		if len(insts) < 2 {
			continue
		}

		for _, inst := range insts {
			renumbered := inst
			if inst.BlockID < 0 {
				renumbered.BlockID = -nextID
			} else {
				renumbered.BlockID = nextID
			}
			out = append(out, renumbered)
		}
		nextID++
	}

	return out
}

func groupByAbsID(blocks []block.Instance) map[int64][]block.Instance {
	groups := make(map[int64][]block.Instance)
	for _, b := range blocks {
		id := b.AbsID()
		groups[id] = append(groups[id], b)
	}

	return groups
}

// priorityOrder returns group ids sorted by descending multiplicity, ties
// broken by ascending id, matching the reference implementation's
// SortByMultiplicity.
func priorityOrder(groups map[int64][]block.Instance) []int64 {
	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		li, lj := len(groups[ids[i]]), len(groups[ids[j]])
		if li != lj {
			return li > lj
		}

		return ids[i] < ids[j]
	})

	return ids
}

// shrinkToUncovered walks inst's start forward and end backward past any
// junction already covered, returning the shrunk instance and whether it
// still meets minBlockSize.
func shrinkToUncovered(covered []bool, inst block.Instance, minBlockSize int) (block.Instance, bool) {
	start, end := inst.Start, inst.End
	for start < end && covered[start] {
		start++
	}
	for end > start && covered[end-1] {
		end--
	}

	inst.Start, inst.End = start, end
	if inst.Length() < minBlockSize {
		return inst, false
	}

	return inst, true
}

func markCovered(covered []bool, inst block.Instance) {
	for i := inst.Start; i < inst.End; i++ {
		covered[i] = true
	}
}
