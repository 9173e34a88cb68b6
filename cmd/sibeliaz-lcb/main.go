// Command sibeliaz-lcb finds locally collinear blocks across a set of FASTA
// genomes and writes their coordinates (and optionally their sequences) to
// an output directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sibeliaz-lcb:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := new(runOptions)

	cmd := &cobra.Command{
		Use:   "sibeliaz-lcb [fasta...]",
		Short: "Find locally collinear blocks across a set of genomes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.fastaPaths = args

			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.k, "k", 15, "k-mer size used to build junctions")
	flags.Int64Var(&opts.minBlockSize, "min-block-size", 500, "minimum score a block must keep to be reported")
	flags.Int64Var(&opts.maxBranchSize, "max-branch-size", 50, "maximum bubble size (bases) tolerated while growing a path")
	flags.Int64Var(&opts.maxFlankingSize, "max-flanking-size", 30, "maximum flank (bases) an instance may lose before it stops qualifying as good")
	flags.Int64Var(&opts.lookingDepth, "looking-depth", 50, "junctions ahead the chooser scans for a next vertex")
	flags.Int64Var(&opts.sampleSize, "sample-size", 0, "inert sampling knob, preserved for command-line compatibility")
	flags.IntVar(&opts.threads, "threads", 1, "number of worker goroutines")
	flags.Int64Var(&opts.randSeed, "rand-seed", 1, "seed used to shuffle the seed list before partitioning across workers")
	flags.StringVar(&opts.outDir, "out", "sibeliaz-lcb-out", "output directory")
	flags.BoolVar(&opts.writeFasta, "write-fasta", false, "also write each surviving block's sequences as FASTA")
	flags.BoolVar(&opts.quiet, "quiet", false, "suppress progress output")

	return cmd
}

type runOptions struct {
	fastaPaths []string

	k               int
	minBlockSize    int64
	maxBranchSize   int64
	maxFlankingSize int64
	lookingDepth    int64
	sampleSize      int64
	threads         int
	randSeed        int64

	outDir     string
	writeFasta bool
	quiet      bool
}
