package trim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/block"
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/trim"
)

func fixtureStore(t *testing.T) *junction.Store {
	t.Helper()
	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "chr1", Sequence: []byte("ACGTACGTACGTACGT")},
		{Name: "chr2", Sequence: []byte("ACGTACGTACGTACGT")},
	}, 3)
	require.NoError(t, err)

	return store
}

func TestTrimDropsUndersizedGroups(t *testing.T) {
	store := fixtureStore(t)

	blocks := []block.Instance{
		{BlockID: 1, Chr: 0, Start: 0, End: 1},
	}

	out := trim.Trim(store, blocks, 1)
	require.Empty(t, out, "a single-instance group can never survive (needs >= 2 instances)")
}

func TestTrimResolvesOverlapByShrinking(t *testing.T) {
	store := fixtureStore(t)

	blocks := []block.Instance{
		{BlockID: 1, Chr: 0, Start: 0, End: 10},
		{BlockID: 1, Chr: 1, Start: 0, End: 10},
		{BlockID: 2, Chr: 0, Start: 5, End: 8},
		{BlockID: 2, Chr: 1, Start: 5, End: 8},
	}

	out := trim.Trim(store, blocks, 1)

	byAbs := map[int64]int{}
	for _, o := range out {
		byAbs[o.AbsID()]++
	}

	// Block 1 has the higher multiplicity tie... both groups have 2
	// instances, so ties break by ascending original id: block 1 claims
	// territory first, block 2 is entirely covered and dropped.
	require.Equal(t, 2, byAbs[1])
	require.Zero(t, byAbs[2])
}

func TestTrimRenumbersSurvivors(t *testing.T) {
	store := fixtureStore(t)

	blocks := []block.Instance{
		{BlockID: 5, Chr: 0, Start: 0, End: 10},
		{BlockID: 5, Chr: 1, Start: 0, End: 10},
	}

	out := trim.Trim(store, blocks, 1)
	require.Len(t, out, 2)
	for _, o := range out {
		require.Equal(t, int64(1), o.AbsID())
	}
}
