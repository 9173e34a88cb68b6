// Package progress reports block-finding progress to an operator as a
// running "processed N of M seeds" line while the search works.
package progress

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Reporter is notified as seeds are processed and blocks are found.
type Reporter interface {
	SeedProcessed()
	BlockFound(blockID int64, instances int)
	Done()
}

// NullReporter discards every event; the default when a caller asks for no
// progress output.
type NullReporter struct{}

func (NullReporter) SeedProcessed()               {}
func (NullReporter) BlockFound(int64, int) {}
func (NullReporter) Done()                        {}

// TextReporter writes a line per event to w. Safe for concurrent use by
// dispatch's worker goroutines: the seed counter is atomic, and each write
// is a single fmt.Fprintf call.
type TextReporter struct {
	w       io.Writer
	total   int64
	seen    atomic.Int64
}

// NewTextReporter returns a Reporter that writes human-readable progress
// lines to w, given the total number of seeds that will be processed.
func NewTextReporter(w io.Writer, total int64) *TextReporter {
	return &TextReporter{w: w, total: total}
}

// SeedProcessed records one more seed as handled.
func (r *TextReporter) SeedProcessed() {
	n := r.seen.Add(1)
	fmt.Fprintf(r.w, "processed %d of %d seeds\n", n, r.total)
}

// BlockFound announces a newly finalized block.
func (r *TextReporter) BlockFound(blockID int64, instances int) {
	fmt.Fprintf(r.w, "block %d: %d instances\n", blockID, instances)
}

// Done announces the run's completion.
func (r *TextReporter) Done() {
	fmt.Fprintf(r.w, "done: %d of %d seeds processed\n", r.seen.Load(), r.total)
}
