// File: types.go
// Role: Path's building blocks — Point and Instance (spec.md §3 "Instance", "Path").
package pathwalk

import (
	"github.com/wangdi2014/SibeliaZ/distkeeper"
	"github.com/wangdi2014/SibeliaZ/junction"
)

// Point is one grown edge together with the signed distance, from the path's
// origin, of its start vertex.
type Point struct {
	Edge          junction.Edge
	StartDistance int64
}

// EndDistance returns the distance of the edge's end vertex from the origin.
func (p Point) EndDistance() int64 {
	return p.StartDistance + p.Edge.Length
}

// Instance is one genomic realization of a path: a contiguous junction range
// on one chromosome (spec.md §3). Front <= Back always holds in chromosome
// index order, regardless of strand.
type Instance struct {
	Front junction.Iterator
	Back  junction.Iterator
}

// SinglePoint reports whether Front and Back address the same junction.
func (in Instance) SinglePoint() bool {
	return in.Front == in.Back
}

// LeftFlankDistance returns dk's recorded distance of Front's vertex.
func (in Instance) LeftFlankDistance(dk *distkeeper.Keeper) int64 {
	return dk.Get(in.Front.VertexID())
}

// RightFlankDistance returns dk's recorded distance of Back's vertex.
func (in Instance) RightFlankDistance(dk *distkeeper.Keeper) int64 {
	return dk.Get(in.Back.VertexID())
}

// Length returns the instance's matched span, spec.md §3's |position(back) -
// position(front)|.
func (in Instance) Length() int64 {
	return abs64(in.Front.Position() - in.Back.Position())
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
