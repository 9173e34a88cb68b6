package distkeeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/distkeeper"
	"github.com/wangdi2014/SibeliaZ/junction"
)

func TestKeeperLifecycle(t *testing.T) {
	k := distkeeper.New()
	v := junction.VertexID(42)

	require.False(t, k.IsSet(v))
	require.Equal(t, int64(0), k.Get(v))

	k.Set(v, 7)
	require.True(t, k.IsSet(v))
	require.Equal(t, int64(7), k.Get(v))

	k.Unset(v)
	require.False(t, k.IsSet(v))

	k.Set(v, 3)
	k.Clear()
	require.False(t, k.IsSet(v))
}
