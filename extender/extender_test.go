package extender_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/extender"
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/pathwalk"
)

func TestRunGrowsBothDirectionsThenStops(t *testing.T) {
	seq := []byte("ACGTACGTACGT")
	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "chr1", Sequence: append([]byte(nil), seq...)},
		{Name: "chr2", Sequence: append([]byte(nil), seq...)},
	}, 3)
	require.NoError(t, err)

	origin := store.SeedVertices()[0]
	p := pathwalk.New(store, 2, 2, 0)
	p.Init(origin)

	extender.Run(p, 3, 2, 2)

	// The run must terminate (it does, since this is a plain call) and must
	// not corrupt the path: every tracked instance still has its Front at or
	// before its Back in chromosome order.
	for _, inst := range p.Instances() {
		require.LessOrEqual(t, inst.Front.Index(), inst.Back.Index())
	}
}

func TestRunIsNoOpOnExhaustedChromosome(t *testing.T) {
	seq := []byte("ACG")
	store, err := junction.NewStore([]junction.Chromosome{{Name: "chr1", Sequence: seq}}, 3)
	require.NoError(t, err)

	origin := store.SeedVertices()[0]
	p := pathwalk.New(store, 2, 2, 0)
	p.Init(origin)

	extender.Run(p, 3, 2, 2)

	require.Equal(t, 0, p.RightSize())
	require.Equal(t, 0, p.LeftSize())
}
