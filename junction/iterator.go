// File: iterator.go
// Role: Iterator, the sequential cursor over one chromosome (spec.md §3, §6).
// Concurrency:
//   - Iterator is a small value type ("iterators are cheap values", spec.md §3);
//     copying one is safe and cheap. IsUsed/MarkUsed touch shared atomics.
package junction

// Iterator is a cursor at (chromosome, index) into a Store. It steps by ±1
// along the chromosome; VertexID/Char/Position/IsPositiveStrand describe the
// junction currently under the cursor.
//
// Simplification (see SPEC_FULL.md "SUPPLEMENTED FEATURE" and DESIGN.md):
// every physical chromosome position holds exactly one junction, so Next/Prev
// always step the physical index by ±1 regardless of the junction's strand —
// the reference implementation's compacted, strand-mirrored traversal is not
// reproduced; it does not affect any of the scoring/locking invariants this
// repository is responsible for.
type Iterator struct {
	store *Store
	chr   int
	index int
}

// Valid reports whether the cursor addresses an existing junction.
func (it Iterator) Valid() bool {
	if it.store == nil || it.chr < 0 || it.chr >= len(it.store.index) {
		return false
	}

	return it.index >= 0 && it.index < len(it.store.index[it.chr].vertex)
}

// Next returns the cursor advanced by one chromosome position.
func (it Iterator) Next() Iterator {
	return Iterator{store: it.store, chr: it.chr, index: it.index + 1}
}

// Prev returns the cursor stepped back by one chromosome position.
func (it Iterator) Prev() Iterator {
	return Iterator{store: it.store, chr: it.chr, index: it.index - 1}
}

// VertexID returns the signed vertex id at the cursor.
func (it Iterator) VertexID() VertexID {
	return it.store.index[it.chr].vertex[it.index]
}

// IsPositiveStrand reports whether this occurrence is the canonical (forward)
// orientation of its vertex.
func (it Iterator) IsPositiveStrand() bool {
	return it.VertexID() > 0
}

// ChrID returns the chromosome index of the cursor.
func (it Iterator) ChrID() int {
	return it.chr
}

// Index returns the in-chromosome junction index of the cursor.
func (it Iterator) Index() int {
	return it.index
}

// Position returns the signed chromosome position: negative on the reverse
// strand, matching spec.md §3.
func (it Iterator) Position() int64 {
	if it.IsPositiveStrand() {
		return int64(it.index)
	}

	return -int64(it.index)
}

// AbsolutePosition returns the unsigned chromosome coordinate, used by the
// chooser for tie-breaking (spec.md §4.D).
func (it Iterator) AbsolutePosition() int64 {
	return int64(it.index)
}

// Char returns the label byte of the edge from this cursor to Next(): the
// base exposed at the trailing end of the k-mer window rooted at index.
func (it Iterator) Char() byte {
	k := it.store.k
	seq := it.store.chrs[it.chr].Sequence
	pos := it.index + k - 1
	if pos < 0 || pos >= len(seq) {
		return 0
	}

	return seq[pos]
}

// IsUsed reports whether this junction was permanently marked used by a
// committed block (spec.md §6 "is_used").
func (it Iterator) IsUsed() bool {
	return it.store.index[it.chr].used[it.index].Load()
}

// MarkUsed permanently marks this junction used. Called only by the
// finalizer, while the owning range lock is held.
func (it Iterator) MarkUsed() {
	it.store.index[it.chr].used[it.index].Store(true)
}

// OutgoingEdge builds the Edge from this cursor's vertex to Next()'s vertex,
// used when growing a path forward (spec.md §3 "Edge").
func (it Iterator) OutgoingEdge() Edge {
	nxt := it.Next()

	return Edge{Start: it.VertexID(), End: nxt.VertexID(), Char: it.Char(), Length: 1}
}

// IngoingEdge builds the Edge from Prev()'s vertex to this cursor's vertex,
// used when growing a path backward.
func (it Iterator) IngoingEdge() Edge {
	prv := it.Prev()

	return Edge{Start: prv.VertexID(), End: it.VertexID(), Char: prv.Char(), Length: 1}
}

// Reverse is the iterator-level "reverse" operation of spec.md §6. Every
// physical position holds one junction whose strand is carried by the sign of
// its vertex id, so Reverse returns the cursor unchanged.
func (it Iterator) Reverse() Iterator {
	return it
}

// TryClaim attempts to soft-lock this junction for the owning path (transition
// UNKNOWN -> IN_USE in the Assignment table, spec.md §4 state machine).
func (it Iterator) TryClaim() bool {
	return it.store.assign.TryClaim(it.chr, it.index)
}

// Release reverts this junction's soft lock (IN_USE -> UNKNOWN).
func (it Iterator) Release() {
	it.store.assign.Release(it.chr, it.index)
}

// IsUnknown reports whether this junction is still unclaimed in the
// Assignment table.
func (it Iterator) IsUnknown() bool {
	return it.store.assign.IsUnknown(it.chr, it.index)
}

// Commit permanently assigns this junction to blockID (IN_USE -> committed).
func (it Iterator) Commit(blockID int64) bool {
	return it.store.assign.Commit(it.chr, it.index, blockID)
}
