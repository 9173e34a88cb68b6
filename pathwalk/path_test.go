package pathwalk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/pathwalk"
)

func twinStore(t *testing.T, k int) *junction.Store {
	t.Helper()
	seq := []byte("ACGTACGA")
	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "chr1", Sequence: append([]byte(nil), seq...)},
		{Name: "chr2", Sequence: append([]byte(nil), seq...)},
	}, k)
	require.NoError(t, err)

	return store
}

func TestPathInitSeedsOneInstancePerOccurrence(t *testing.T) {
	store := twinStore(t, 3)
	seeds := store.SeedVertices()
	require.NotEmpty(t, seeds)

	origin := seeds[0]
	want := store.InstancesCount(origin)

	p := pathwalk.New(store, 0, 2, 0)
	p.Init(origin)

	require.Equal(t, want, len(p.Instances()))
	require.Equal(t, origin, p.Origin())
	require.Equal(t, origin, p.EndVertex())
	require.Equal(t, origin, p.StartVertex())
	require.True(t, p.IsInPath(origin))
}

func TestPushBackGrowsSharedInstancesThenPopBackReverts(t *testing.T) {
	store := twinStore(t, 3)
	seeds := store.SeedVertices()

	var origin junction.VertexID
	var it junction.Iterator
	for _, v := range seeds {
		if store.InstancesCount(v) >= 2 {
			ref := store.Occurrence(v, 0)
			if ref.Next().Valid() {
				origin = v
				it = ref
				break
			}
		}
	}
	require.NotZero(t, origin, "fixture must contain a vertex with a followable edge")

	p := pathwalk.New(store, 0, 2, 0)
	p.Init(origin)
	before := len(p.Instances())

	edge := it.OutgoingEdge()
	ok := p.PushBack(edge)
	require.True(t, ok)
	require.Equal(t, 1, p.RightSize())
	require.True(t, p.IsInPath(edge.End))

	p.PopBack()
	require.Equal(t, 0, p.RightSize())
	require.False(t, p.IsInPath(edge.End))
	require.Equal(t, before, len(p.Instances()))
}

func TestPushBackRejectsCycle(t *testing.T) {
	store := twinStore(t, 3)
	origin := store.SeedVertices()[0]

	p := pathwalk.New(store, 0, 2, 0)
	p.Init(origin)

	require.False(t, p.PushBack(junction.Edge{Start: origin, End: origin, Char: 'A', Length: 1}))
	require.Equal(t, 0, p.RightSize())
}

func TestClearReleasesEverything(t *testing.T) {
	store := twinStore(t, 3)
	origin := store.SeedVertices()[0]

	p := pathwalk.New(store, 0, 2, 0)
	p.Init(origin)
	p.Clear()

	require.Equal(t, 0, len(p.Instances()))
	require.False(t, p.IsInPath(origin))

	it := store.Occurrence(origin, 0)
	require.True(t, it.IsUnknown(), "Clear must release every junction this path had claimed")
}

func TestScoreNonNegativeOnFreshInit(t *testing.T) {
	store := twinStore(t, 3)
	origin := store.SeedVertices()[0]

	p := pathwalk.New(store, 0, 2, 0)
	p.Init(origin)

	require.GreaterOrEqual(t, p.Score(false), int64(0))
}
