// File: path.go
// Role: Path, the bubble-tolerant growing chain of instances (spec.md §4.C).
//
// Grounded on original_source/src/path.h's Path class: PointPushBack/Front,
// PointPopBack/Front, Score/InstanceScore/GoodInstances are ported method for
// method, with the Assignment table's direct reads/writes replaced by
// junction.Iterator's CAS-based TryClaim/Release/Commit (spec.md §9 "Global
// mutable state... model as shared atomic counters").
package pathwalk

import (
	"github.com/wangdi2014/SibeliaZ/distkeeper"
	"github.com/wangdi2014/SibeliaZ/junction"
)

// Path grows a single candidate locally collinear block around one origin
// vertex, one Point at a time, tracking every genomic instance that still
// agrees with the chain built so far.
type Path struct {
	store *junction.Store
	dk    *distkeeper.Keeper

	maxBranchSize   int64
	minChainSize    int64
	maxFlankingSize int64

	origin    junction.VertexID
	leftBody  []Point
	rightBody []Point
	instances []Instance
}

// New returns an empty Path bound to store, with growth governed by
// maxBranchSize (bubble tolerance), minBlockSize and maxFlankingSize (spec.md
// §6 configuration knobs). minChainSize is derived exactly as the reference
// implementation derives it: minBlockSize - 2*maxFlankingSize.
func New(store *junction.Store, maxBranchSize, minBlockSize, maxFlankingSize int64) *Path {
	return &Path{
		store:           store,
		dk:              distkeeper.New(),
		maxBranchSize:   maxBranchSize,
		minChainSize:    minBlockSize - 2*maxFlankingSize,
		maxFlankingSize: maxFlankingSize,
	}
}

// Init seeds the path at origin: every still-unclaimed occurrence of origin
// becomes a single-point instance.
func (p *Path) Init(origin junction.VertexID) {
	p.origin = origin
	p.dk.Set(origin, 0)

	n := p.store.InstancesCount(origin)
	for i := 0; i < n; i++ {
		it := p.store.Occurrence(origin, i)
		if it.IsUnknown() {
			p.instances = append(p.instances, Instance{Front: it, Back: it})
		}
	}
}

// Clear releases every junction this path claimed and empties it, ready for
// reuse on the next seed (spec.md §4.G "two reused Path scratch objects").
func (p *Path) Clear() {
	p.dk.Unset(p.origin)

	for _, inst := range p.instances {
		for it := inst.Front; ; it = it.Next() {
			it.Release()
			if it.Index() == inst.Back.Index() {
				break
			}
		}
	}

	for _, pt := range p.leftBody {
		p.dk.Unset(pt.Edge.End)
		p.dk.Unset(pt.Edge.Start)
	}
	for _, pt := range p.rightBody {
		p.dk.Unset(pt.Edge.End)
		p.dk.Unset(pt.Edge.Start)
	}

	p.leftBody = nil
	p.rightBody = nil
	p.instances = nil
	p.origin = 0
}

// IsInPath reports whether v already has a recorded distance in this path,
// i.e. growing into v again would close a cycle.
func (p *Path) IsInPath(v junction.VertexID) bool {
	return p.dk.IsSet(v)
}

// Origin returns the vertex this path was seeded from.
func (p *Path) Origin() junction.VertexID {
	return p.origin
}

// EndVertex returns the path's current rightmost vertex (the origin if the
// right body is still empty).
func (p *Path) EndVertex() junction.VertexID {
	if len(p.rightBody) == 0 {
		return p.origin
	}

	return p.rightBody[len(p.rightBody)-1].Edge.End
}

// StartVertex returns the path's current leftmost vertex (the origin if the
// left body is still empty).
func (p *Path) StartVertex() junction.VertexID {
	if len(p.leftBody) == 0 {
		return p.origin
	}

	return p.leftBody[len(p.leftBody)-1].Edge.Start
}

// RightSize and LeftSize report how many edges have been grown in each
// direction.
func (p *Path) RightSize() int { return len(p.rightBody) }
func (p *Path) LeftSize() int  { return len(p.leftBody) }

// MaxBranchSize and MaxFlankingSize expose the knobs this path was built
// with, so a caller (the finalizer) can construct a fresh Path over the same
// store with matching growth rules.
func (p *Path) MaxBranchSize() int64   { return p.maxBranchSize }
func (p *Path) MaxFlankingSize() int64 { return p.maxFlankingSize }

// MiddlePathLength returns the signed span covered by the path's grown body:
// the right body's end distance minus the left body's start distance (both
// 0 if that side hasn't grown yet). It is the length budget the extender
// checks against minRun between chooser calls.
func (p *Path) MiddlePathLength() int64 {
	return rightBodyEndDistance(p.rightBody) - leftBodyStartDistance(p.leftBody)
}

// ReleaseClaims releases every junction this path's instances currently
// hold without resetting its grown body, distances, or instance list. The
// finalizer uses this to free a grown path's claims before rebuilding a
// truncated replacement that reclaims only the edges within the best-scoring
// prefix — the two paths must not contend over the same junctions.
func (p *Path) ReleaseClaims() {
	for _, inst := range p.instances {
		for it := inst.Front; ; it = it.Next() {
			it.Release()
			if it.Index() == inst.Back.Index() {
				break
			}
		}
	}
}

// RightPoint and LeftPoint return the i-th grown edge in each direction.
func (p *Path) RightPoint(i int) Point { return p.rightBody[i] }
func (p *Path) LeftPoint(i int) Point  { return p.leftBody[i] }

// Instances returns every instance currently tracked by the path. Callers
// must not mutate the returned slice.
func (p *Path) Instances() []Instance {
	return p.instances
}

// GoodInstances returns the subset of instances whose length meets
// minChainSize, the reference implementation's "good instance" predicate.
func (p *Path) GoodInstances() []Instance {
	out := make([]Instance, 0, len(p.instances))
	for _, inst := range p.instances {
		if inst.Length() >= p.minChainSize {
			out = append(out, inst)
		}
	}

	return out
}

func leftBodyStartDistance(body []Point) int64 {
	if len(body) == 0 {
		return 0
	}

	return body[len(body)-1].StartDistance
}

func rightBodyEndDistance(body []Point) int64 {
	if len(body) == 0 {
		return 0
	}

	return body[len(body)-1].EndDistance()
}

// InstanceScore computes an instance's matched length and score: length minus
// the flank trimmed away by this path's current left/right body extents
// (spec.md §4.C "Score").
func (p *Path) InstanceScore(inst Instance) (length, score int64) {
	length = inst.Length()
	leftFlank := abs64(inst.LeftFlankDistance(p.dk) - leftBodyStartDistance(p.leftBody))
	rightFlank := abs64(inst.RightFlankDistance(p.dk) - rightBodyEndDistance(p.rightBody))
	score = length - leftFlank - rightFlank

	return length, score
}

// Score sums every instance's score. When final is true, only instances
// meeting minChainSize contribute, matching the reference implementation's
// final-scoring pass.
func (p *Path) Score(final bool) int64 {
	var ret int64
	for _, inst := range p.instances {
		length, score := p.InstanceScore(inst)
		if !final || length >= p.minChainSize {
			ret += score
		}
	}

	return ret
}

// GoodInstanceCount returns the number of instances meeting minChainSize.
func (p *Path) GoodInstanceCount() int {
	n := 0
	for _, inst := range p.instances {
		if inst.Length() >= p.minChainSize {
			n++
		}
	}

	return n
}

// PushBack grows the path one edge forward. It returns false, leaving the
// path exactly as it was before the call, if vertex is already part of the
// path (a cycle) or if accepting the edge would bring an instance's span to
// at least minChainSize while its left flank exceeds maxFlankingSize.
func (p *Path) PushBack(e junction.Edge) bool {
	vertex := e.End
	if p.dk.IsSet(vertex) {
		return false
	}

	startVertexDistance := rightBodyEndDistance(p.rightBody)
	endVertexDistance := startVertexDistance + e.Length
	p.dk.Set(vertex, endVertexDistance)

	for i := range p.instances {
		inst := &p.instances[i]
		startIt := inst.Back
		nowIt := startIt.Next()
		if !nowIt.Valid() || !nowIt.IsUnknown() {
			continue
		}

		reach := false
		switch {
		case startIt.VertexID() == e.Start && nowIt.VertexID() == vertex && startIt.Char() == e.Char:
			reach = true
		case abs64(endVertexDistance-inst.RightFlankDistance(p.dk)) <= p.maxBranchSize:
			for ; nowIt.Valid() && nowIt.IsUnknown() && abs64(nowIt.AbsolutePosition()-startIt.AbsolutePosition()) <= p.maxBranchSize; nowIt = nowIt.Next() {
				if nowIt.VertexID() == vertex {
					reach = true
					break
				}
			}
		}

		if !reach {
			continue
		}

		nextLength := abs64(nowIt.Position() - inst.Front.Position())
		leftFlankSize := abs64(inst.LeftFlankDistance(p.dk) - leftBodyStartDistance(p.leftBody))
		if nextLength >= p.minChainSize && leftFlankSize > p.maxFlankingSize {
			p.rightBody = append(p.rightBody, Point{Edge: e, StartDistance: startVertexDistance})
			p.PopBack()

			return false
		}

		if !nowIt.TryClaim() {
			// Lost the race for this slot to another path; leave this
			// instance at its current back rather than advancing it.
			continue
		}
		inst.Back = nowIt
	}

	n := p.store.InstancesCount(vertex)
	for i := 0; i < n; i++ {
		it := p.store.Occurrence(vertex, i)
		if it.IsUnknown() && it.TryClaim() {
			p.instances = append(p.instances, Instance{Front: it, Back: it})
		}
	}

	p.rightBody = append(p.rightBody, Point{Edge: e, StartDistance: startVertexDistance})

	return true
}

// PushFront is PushBack's mirror image, growing the path one edge backward.
func (p *Path) PushFront(e junction.Edge) bool {
	vertex := e.Start
	if p.dk.IsSet(vertex) {
		return false
	}

	endVertexDistance := leftBodyStartDistance(p.leftBody)
	startVertexDistance := endVertexDistance - e.Length
	p.dk.Set(vertex, startVertexDistance)

	for i := range p.instances {
		inst := &p.instances[i]
		startIt := inst.Front
		nowIt := startIt.Prev()
		if !nowIt.Valid() || !nowIt.IsUnknown() {
			continue
		}

		reach := false
		switch {
		case nowIt.VertexID() == vertex && startIt.VertexID() == e.End && nowIt.Char() == e.Char:
			reach = true
		case abs64(endVertexDistance-inst.LeftFlankDistance(p.dk)) <= p.maxBranchSize:
			for ; nowIt.Valid() && nowIt.IsUnknown() && abs64(nowIt.AbsolutePosition()-startIt.AbsolutePosition()) <= p.maxBranchSize; nowIt = nowIt.Prev() {
				if nowIt.VertexID() == vertex {
					reach = true
					break
				}
			}
		}

		if !reach {
			continue
		}

		nextLength := abs64(nowIt.Position() - inst.Back.Position())
		rightFlankSize := abs64(inst.RightFlankDistance(p.dk) - rightBodyEndDistance(p.rightBody))
		if nextLength >= p.minChainSize && rightFlankSize > p.maxFlankingSize {
			p.leftBody = append(p.leftBody, Point{Edge: e, StartDistance: startVertexDistance})
			p.PopFront()

			return false
		}

		if !nowIt.TryClaim() {
			continue
		}
		inst.Front = nowIt
	}

	n := p.store.InstancesCount(vertex)
	for i := 0; i < n; i++ {
		it := p.store.Occurrence(vertex, i)
		if it.IsUnknown() && it.TryClaim() {
			p.instances = append(p.instances, Instance{Front: it, Back: it})
		}
	}

	p.leftBody = append(p.leftBody, Point{Edge: e, StartDistance: startVertexDistance})

	return true
}

// PopBack undoes the most recent PushBack: releases the claimed junction,
// unsets its distance, and rolls every affected instance's Back pointer back
// to the nearest position this path still owns.
func (p *Path) PopBack() {
	last := len(p.rightBody) - 1
	lastVertex := p.rightBody[last].Edge.End
	p.rightBody = p.rightBody[:last]
	p.dk.Unset(lastVertex)

	kept := make([]Instance, 0, len(p.instances))
	for i := len(p.instances) - 1; i >= 0; i-- {
		inst := p.instances[i]
		if inst.Back.VertexID() == lastVertex {
			inst.Back.Release()
			if inst.SinglePoint() {
				continue
			}

			jt := inst.Back
			for !p.dk.IsSet(jt.VertexID()) {
				jt = jt.Prev()
			}
			inst.Back = jt
		}
		kept = append(kept, inst)
	}

	for l, r := 0, len(kept)-1; l < r; l, r = l+1, r-1 {
		kept[l], kept[r] = kept[r], kept[l]
	}
	p.instances = kept
}

// PopFront is PopBack's mirror image.
func (p *Path) PopFront() {
	last := len(p.leftBody) - 1
	lastVertex := p.leftBody[last].Edge.Start
	p.leftBody = p.leftBody[:last]
	p.dk.Unset(lastVertex)

	kept := make([]Instance, 0, len(p.instances))
	for i := len(p.instances) - 1; i >= 0; i-- {
		inst := p.instances[i]
		if inst.Front.VertexID() == lastVertex {
			inst.Front.Release()
			if inst.SinglePoint() {
				continue
			}

			jt := inst.Front
			for !p.dk.IsSet(jt.VertexID()) {
				jt = jt.Next()
			}
			inst.Front = jt
		}
		kept = append(kept, inst)
	}

	for l, r := 0, len(kept)-1; l < r; l, r = l+1, r-1 {
		kept[l], kept[r] = kept[r], kept[l]
	}
	p.instances = kept
}
