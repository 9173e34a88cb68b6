// File: types.go
// Role: Core junction-graph vocabulary — vertex ids, edges, and sentinel errors.
// Concurrency:
//   - VertexID and Edge are plain values; no locking required.
package junction

import "errors"

// Sentinel errors for the junction package.
var (
	// ErrEmptySequence indicates that no chromosomes were given.
	ErrEmptySequence = errors.New("junction: no chromosome sequences given")
	// ErrBadKmerSize indicates k <= 0 or k larger than some input chromosome.
	ErrBadKmerSize = errors.New("junction: k-mer size must be positive and <= shortest chromosome")
	// ErrChrOutOfRange indicates a chromosome index outside [0, ChrNumber).
	ErrChrOutOfRange = errors.New("junction: chromosome index out of range")
	// ErrBadBase indicates a byte outside {A,C,G,T,a,c,g,t} in an input sequence.
	ErrBadBase = errors.New("junction: sequence contains a non-ACGT base")
)

// VertexID identifies a k-mer junction in the compacted de Bruijn graph.
// The graph is symmetric: -v denotes the reverse-complement vertex of v.
// VertexID 0 is reserved as the "no vertex" sentinel returned by the chooser.
type VertexID int64

// Edge is an oriented triple (start, end, label, length) constructed from a
// junction iterator's outgoing or incoming step (spec.md §3 "Edge").
type Edge struct {
	Start  VertexID
	End    VertexID
	Char   byte
	Length int64
}

// Chromosome is one named input sequence fed to NewStore.
type Chromosome struct {
	Name     string
	Sequence []byte
}
