package progress_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangdi2014/SibeliaZ/progress"
)

func TestTextReporterWritesLines(t *testing.T) {
	var buf bytes.Buffer
	r := progress.NewTextReporter(&buf, 2)

	r.SeedProcessed()
	r.BlockFound(1, 3)
	r.SeedProcessed()
	r.Done()

	out := buf.String()
	require.True(t, strings.Contains(out, "processed 1 of 2 seeds"))
	require.True(t, strings.Contains(out, "block 1: 3 instances"))
	require.True(t, strings.Contains(out, "processed 2 of 2 seeds"))
	require.True(t, strings.Contains(out, "done: 2 of 2 seeds processed"))
}

func TestNullReporterDoesNothing(t *testing.T) {
	var r progress.Reporter = progress.NullReporter{}
	r.SeedProcessed()
	r.BlockFound(1, 2)
	r.Done()
}
