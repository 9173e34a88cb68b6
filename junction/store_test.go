package junction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/junction"
)

func TestNewStoreRejectsBadInput(t *testing.T) {
	_, err := junction.NewStore(nil, 3)
	require.ErrorIs(t, err, junction.ErrEmptySequence)

	_, err = junction.NewStore([]junction.Chromosome{{Name: "c1", Sequence: []byte("ACGT")}}, 0)
	require.ErrorIs(t, err, junction.ErrBadKmerSize)

	_, err = junction.NewStore([]junction.Chromosome{{Name: "c1", Sequence: []byte("ACGT")}}, 10)
	require.ErrorIs(t, err, junction.ErrBadKmerSize)

	_, err = junction.NewStore([]junction.Chromosome{{Name: "c1", Sequence: []byte("ACGN")}}, 2)
	require.ErrorIs(t, err, junction.ErrBadBase)
}

func TestIdenticalChromosomesShareVertices(t *testing.T) {
	seq := []byte("ACGTACGTAC")
	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "chr1", Sequence: seq},
		{Name: "chr2", Sequence: append([]byte(nil), seq...)},
	}, 3)
	require.NoError(t, err)

	n := len(seq) - 3 + 1
	for i := 0; i < n; i++ {
		a := store.At(0, i)
		b := store.At(1, i)
		require.Equal(t, a.VertexID(), b.VertexID(), "position %d should share a vertex across identical chromosomes", i)
	}
}

func TestReverseComplementSharesMagnitude(t *testing.T) {
	fwd := []byte("AACGTTGC")
	rev := make([]byte, len(fwd))
	comp := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	for i, b := range fwd {
		rev[len(fwd)-1-i] = comp[b]
	}

	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "fwd", Sequence: fwd},
		{Name: "rev", Sequence: rev},
	}, 4)
	require.NoError(t, err)

	// The first window of fwd and the last window of rev are reverse
	// complements of one another, so they must map to the same |vertex id|.
	a := store.At(0, 0)
	n := len(rev) - 4 + 1
	b := store.At(1, n-1)
	require.Equal(t, a.VertexID(), -b.VertexID())
}

func TestAssignmentLifecycle(t *testing.T) {
	store, err := junction.NewStore([]junction.Chromosome{{Name: "c1", Sequence: []byte("ACGTACGT")}}, 3)
	require.NoError(t, err)

	it := store.At(0, 0)
	require.True(t, it.IsUnknown())
	require.True(t, it.TryClaim())
	require.False(t, it.TryClaim(), "second claim must fail while IN_USE")
	require.False(t, it.IsUnknown())

	it.Release()
	require.True(t, it.IsUnknown())

	require.True(t, it.TryClaim())
	require.True(t, it.Commit(7))
	require.False(t, it.IsUnknown())
	require.False(t, it.TryClaim(), "committed slots are terminal")
	it.Release()
	require.False(t, it.IsUnknown(), "commit must not revert under Release")
}

func TestUsedFlag(t *testing.T) {
	store, err := junction.NewStore([]junction.Chromosome{{Name: "c1", Sequence: []byte("ACGTACGT")}}, 3)
	require.NoError(t, err)

	it := store.At(0, 1)
	require.False(t, it.IsUsed())
	it.MarkUsed()
	require.True(t, it.IsUsed())
}

func TestLockRangeAcrossChromosomes(t *testing.T) {
	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "c1", Sequence: []byte("ACGTACGT")},
		{Name: "c2", Sequence: []byte("ACGTACGT")},
	}, 3)
	require.NoError(t, err)

	hint := junction.NewLockHint()
	begin, end := store.At(0, 0), store.At(0, 2)
	store.LockRange(begin, end, hint)
	store.UnlockRange(begin, end, hint)

	begin2, end2 := store.At(1, 0), store.At(1, 2)
	store.LockRange(begin2, end2, hint)
	store.UnlockRange(begin2, end2, hint)
}
