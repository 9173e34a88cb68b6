package trim_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/block"
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/trim"
)

func TestWriteGFFEmitsOneFeaturePerInstance(t *testing.T) {
	store := fixtureStore(t)

	instances := []block.Instance{
		{BlockID: 1, Chr: 0, Start: 0, End: 4},
		{BlockID: -1, Chr: 1, Start: 2, End: 6},
	}

	var buf bytes.Buffer
	require.NoError(t, trim.WriteGFF(&buf, store, instances))

	out := buf.String()
	require.True(t, strings.Contains(out, "chr1"))
	require.True(t, strings.Contains(out, "chr2"))
}

func TestWriteFASTAEmitsOneRecordPerInstance(t *testing.T) {
	store, err := junction.NewStore([]junction.Chromosome{
		{Name: "chr1", Sequence: []byte("ACGTACGTACGTACGT")},
		{Name: "chr2", Sequence: []byte("ACGTACGTACGTACGT")},
	}, 3)
	require.NoError(t, err)

	instances := []block.Instance{
		{BlockID: 1, Chr: 0, Start: 0, End: 4},
		{BlockID: -1, Chr: 1, Start: 2, End: 6},
	}

	var buf bytes.Buffer
	require.NoError(t, trim.WriteFASTA(&buf, store, instances))
	require.True(t, strings.Contains(buf.String(), "block_1_chr0+"))
	require.True(t, strings.Contains(buf.String(), "block_1_chr1-"))
}
