package finalizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/extender"
	"github.com/wangdi2014/SibeliaZ/finalizer"
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/pathwalk"
)

func TestTryFinalizeRejectsTooFewGoodInstances(t *testing.T) {
	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "chr1", Sequence: []byte("ACGTACGT")},
	}, 3)
	require.NoError(t, err)

	origin := store.SeedVertices()[0]
	p := pathwalk.New(store, 2, 100, 0)
	p.Init(origin)

	_, ok := finalizer.TryFinalize(store, p, 1, 100, p.RightSize(), p.LeftSize())
	require.False(t, ok, "freshly seeded single-point instances cannot meet a minimum chain size of 100")
}

func TestTryFinalizeCommitsAndMarksUsed(t *testing.T) {
	seq := []byte("ACGTACGTACGT")
	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "chr1", Sequence: append([]byte(nil), seq...)},
		{Name: "chr2", Sequence: append([]byte(nil), seq...)},
	}, 3)
	require.NoError(t, err)

	origin := store.SeedVertices()[0]
	p := pathwalk.New(store, 2, 2, 0)
	p.Init(origin)
	result := extender.Run(p, 3, 2, 2)

	out, ok := finalizer.TryFinalize(store, p, 1, 1, result.BestRightSize, result.BestLeftSize)
	if !ok {
		t.Skip("fixture did not grow a qualifying block under this minBlockSize")
	}

	require.GreaterOrEqual(t, len(out), 2)
	for _, bi := range out {
		require.NotZero(t, bi.BlockID)
		require.Equal(t, int64(1), bi.AbsID())
		for idx := bi.Start; idx < bi.End; idx++ {
			it := store.At(bi.Chr, idx)
			require.True(t, it.IsUsed())
		}
	}
}
