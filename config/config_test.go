package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/config"
)

func TestNewAppliesDefaults(t *testing.T) {
	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, 15, c.K)
	require.Equal(t, 1, c.Threads)
}

func TestNewAppliesOptions(t *testing.T) {
	c, err := config.New(config.WithK(25), config.WithThreads(4), config.WithMinBlockSize(1000))
	require.NoError(t, err)
	require.Equal(t, 25, c.K)
	require.Equal(t, 4, c.Threads)
	require.Equal(t, int64(1000), c.MinBlockSize)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	_, err := config.New(config.WithK(0))
	require.Error(t, err)

	_, err = config.New(config.WithThreads(-1))
	require.Error(t, err)

	_, err = config.New(config.WithMaxFlankingSize(1000))
	require.Error(t, err)
}
