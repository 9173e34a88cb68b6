// File: store.go
// Role: the junction storage layer (spec.md §6 "Junction store interface").
//
// spec.md treats graph construction as an out-of-scope external collaborator,
// specified only by interface. Store is the concrete, minimal implementation
// that gives that interface a body (see SPEC_FULL.md "SUPPLEMENTED FEATURE").
// It canonicalizes every k-mer window of every input chromosome into a dense
// VertexID (a k-mer and its reverse complement share |id|, with sign carrying
// strand), and keeps one Assignment/used slot per chromosome position.
//
// Concurrency:
//   - VerticesNumber/InstancesCount/Occurrence/ChrSequence/ChrDescription/ChrNumber
//     are read-only after NewStore returns and require no locking.
//   - The per-position "used" flag is an atomic.Bool array: writers are the
//     finalizer (under a held range lock), readers are the chooser and Path's
//     push/pop (no lock); stale false reads only cause a redundant recheck later.
//   - Assignment-table races are resolved by CAS (see assignment.go).
//   - LockRange/UnlockRange serialize finalize attempts per spec.md §5.
package junction

import (
	"sort"
	"sync/atomic"
)

// chrIndex is a per-chromosome, per-position record of which vertex occurs
// there, precomputed once at construction time.
type chrIndex struct {
	vertex []VertexID     // vertex[i] = canonical+signed id of the k-mer starting at position i
	used   []atomic.Bool  // used[i] = permanently marked after a block commits through it
}

// Store is the concrete junction storage layer described in spec.md §6.
type Store struct {
	k            int
	chrs         []Chromosome
	index        []chrIndex
	occ          map[VertexID][]Ref // occ[v] = every (chr,index) where v occurs, in chromosome/position order
	vertexCount  int64              // number of distinct canonical vertices assigned
	assign       *assignmentTable
	locks        *rangeLocks
}

// Ref is a lightweight (chromosome, index) coordinate used to enumerate a
// vertex's occurrences without materializing full iterators up front.
type Ref struct {
	Chr   int
	Index int
}

// NewStore builds a Store over chrs using k-mer size k. Every window of length
// k in every chromosome (on both strands) becomes one junction; canonical
// vertex ids are assigned so that a k-mer and its reverse complement map to
// the same |id| (spec.md §3 "the graph is symmetric").
func NewStore(chrs []Chromosome, k int) (*Store, error) {
	if k <= 0 {
		return nil, ErrBadKmerSize
	}
	if len(chrs) == 0 {
		return nil, ErrEmptySequence
	}
	for _, c := range chrs {
		if len(c.Sequence) < k {
			return nil, ErrBadKmerSize
		}
		if err := validateBases(c.Sequence); err != nil {
			return nil, err
		}
	}

	s := &Store{
		k:     k,
		chrs:  chrs,
		index: make([]chrIndex, len(chrs)),
		occ:   make(map[VertexID][]Ref),
	}

	// canon maps a canonical k-mer string to the positive vertex id assigned to it.
	canon := make(map[string]VertexID, 1<<16)
	nextID := VertexID(1)

	lengths := make([]int, len(chrs))
	for ci, c := range chrs {
		n := len(c.Sequence) - k + 1
		lengths[ci] = n
		s.index[ci].vertex = make([]VertexID, n)
		s.index[ci].used = make([]atomic.Bool, n)
		for pos := 0; pos < n; pos++ {
			fwd := c.Sequence[pos : pos+k]
			rev := reverseComplement(fwd)
			positive := true
			key := string(fwd)
			if string(rev) < key {
				key = string(rev)
				positive = false
			}

			id, ok := canon[key]
			if !ok {
				id = nextID
				nextID++
				canon[key] = id
			}

			signed := id
			if !positive {
				signed = -id
			}
			s.index[ci].vertex[pos] = signed
			s.occ[signed] = append(s.occ[signed], Ref{Chr: ci, Index: pos})
		}
	}

	s.vertexCount = int64(nextID - 1)
	s.assign = newAssignmentTable(lengths)
	s.locks = newRangeLocks(len(chrs))

	// Keep occurrence lists in a deterministic order (they are appended in
	// chromosome order already; sort guards against any future parallel build).
	for v, refs := range s.occ {
		sort.Slice(refs, func(i, j int) bool {
			if refs[i].Chr != refs[j].Chr {
				return refs[i].Chr < refs[j].Chr
			}
			return refs[i].Index < refs[j].Index
		})
		s.occ[v] = refs
	}

	return s, nil
}

func validateBases(seq []byte) error {
	for _, b := range seq {
		switch b {
		case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		default:
			return ErrBadBase
		}
	}

	return nil
}

var complement = [256]byte{}

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'], complement['T'] = 'T', 'A'
	complement['C'], complement['G'] = 'G', 'C'
	complement['a'], complement['t'] = 't', 'a'
	complement['c'], complement['g'] = 'g', 'c'
}

// reverseComplement returns the reverse complement of seq, grounded on the
// original implementation's own DnaChar::ReverseChar helper rather than a
// heavier alphabet-aware dependency (this is a hot inner loop run once per
// k-mer window at construction time).
func reverseComplement(seqBytes []byte) []byte {
	out := make([]byte, len(seqBytes))
	for i, b := range seqBytes {
		out[len(seqBytes)-1-i] = complement[b]
	}

	return out
}

// VerticesNumber returns the number of distinct canonical vertices (spec.md §6).
func (s *Store) VerticesNumber() int64 {
	return s.vertexCount
}

// InstancesCount returns the number of occurrences of v across all chromosomes.
func (s *Store) InstancesCount(v VertexID) int {
	return len(s.occ[v])
}

// Occurrence returns the i-th occurrence of v as a sequential iterator.
func (s *Store) Occurrence(v VertexID, i int) Iterator {
	ref := s.occ[v][i]

	return s.At(ref.Chr, ref.Index)
}

// Occurrences returns every occurrence of v; callers must not retain the
// returned slice across a Store mutation (there are none after NewStore).
func (s *Store) Occurrences(v VertexID) []Ref {
	return s.occ[v]
}

// SeedVertices enumerates every vertex id with at least one positive-strand
// occurrence, in ascending order (spec.md §4.G "Build the seed list").
// Strand pairs are deduplicated: a canonical vertex whose every physical
// occurrence happens to be the non-canonical (negative) orientation is never
// returned, matching the reference implementation's own dedup rule.
func (s *Store) SeedVertices() []VertexID {
	out := make([]VertexID, 0, s.vertexCount)
	for id := VertexID(1); id <= VertexID(s.vertexCount); id++ {
		if len(s.occ[id]) > 0 {
			out = append(out, id)
		}
	}

	return out
}

// At builds a sequential iterator at an explicit (chromosome, index).
func (s *Store) At(chr, index int) Iterator {
	return Iterator{store: s, chr: chr, index: index}
}

// ChrSequence returns the raw sequence bytes of chromosome chr.
func (s *Store) ChrSequence(chr int) []byte {
	return s.chrs[chr].Sequence
}

// ChrDescription returns the display name of chromosome chr.
func (s *Store) ChrDescription(chr int) string {
	return s.chrs[chr].Name
}

// ChrNumber returns the number of chromosomes in the store.
func (s *Store) ChrNumber() int {
	return len(s.chrs)
}

// K returns the k-mer size the store was built with.
func (s *Store) K() int {
	return s.k
}
