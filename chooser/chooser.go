// Package chooser implements the next-vertex chooser (spec.md §4.D
// "MostPopularVertex"): given a growing path, decide which neighboring vertex
// to extend towards next.
//
// Grounded on the reference implementation's vertex-popularity voting: every
// instance whose endpoint sits at the path's current frontier looks ahead,
// within lookingDepth steps or maxBranchSize bases of genomic offset
// (whichever budget is more permissive), for the next reachable junction;
// the candidate vertex reached by the most instances (weighted by each
// instance's matched length) wins, ties broken by the smallest genomic
// offset from that instance's walk origin.
package chooser

import (
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/pathwalk"
)

type candidate struct {
	vertex junction.VertexID
	count  int64
	diff   int64
	origin junction.Iterator
}

// Choose scans every qualifying instance of p — good instances if at least
// two exist, else every instance — up to lookingDepth junctions ahead (or
// further, while still within maxBranchSize bases of that instance's walk
// origin), and returns the origin iterator to extend from together with the
// winning vertex id. The caller pushes one edge at a time from origin until
// it reaches target. ok is false when no instance has anywhere left to grow.
func Choose(p *pathwalk.Path, forward bool, lookingDepth, maxBranchSize int64) (origin junction.Iterator, target junction.VertexID, ok bool) {
	good := p.GoodInstances()
	instances := p.Instances()
	if len(good) >= 2 {
		instances = good
	}

	startVid := p.EndVertex()
	if !forward {
		startVid = p.StartVertex()
	}

	tally := make(map[junction.VertexID]*candidate)
	var best *candidate

	for _, inst := range instances {
		var nowVid junction.VertexID
		var walkOrigin junction.Iterator
		if forward {
			nowVid = inst.Back.VertexID()
			walkOrigin = inst.Back
		} else {
			nowVid = inst.Front.VertexID()
			walkOrigin = inst.Front
		}
		if nowVid != startVid {
			continue
		}

		weight := inst.Length() + 1

		it := walkOrigin
		if forward {
			it = it.Next()
		} else {
			it = it.Prev()
		}

		for steps := int64(1); it.Valid(); steps++ {
			diff := abs64(it.AbsolutePosition() - walkOrigin.AbsolutePosition())
			if steps >= lookingDepth && diff > maxBranchSize {
				break
			}

			v := it.VertexID()
			if p.IsInPath(v) || it.IsUsed() {
				break
			}

			c, seen := tally[v]
			if !seen {
				c = &candidate{vertex: v}
				tally[v] = c
			}
			c.count += weight

			if best == nil || c.count > best.count || (c.count == best.count && diff < best.diff) {
				c.diff = diff
				c.origin = walkOrigin
				best = c
			}

			if forward {
				it = it.Next()
			} else {
				it = it.Prev()
			}
		}
	}

	if best == nil {
		return junction.Iterator{}, 0, false
	}

	return best.origin, best.vertex, true
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
