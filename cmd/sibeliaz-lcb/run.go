package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wangdi2014/SibeliaZ/block"
	"github.com/wangdi2014/SibeliaZ/config"
	"github.com/wangdi2014/SibeliaZ/dispatch"
	"github.com/wangdi2014/SibeliaZ/junction"
	"github.com/wangdi2014/SibeliaZ/progress"
	"github.com/wangdi2014/SibeliaZ/trim"
)

func run(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := config.New(
		config.WithK(opts.k),
		config.WithMinBlockSize(opts.minBlockSize),
		config.WithMaxBranchSize(opts.maxBranchSize),
		config.WithMaxFlankingSize(opts.maxFlankingSize),
		config.WithLookingDepth(opts.lookingDepth),
		config.WithSampleSize(opts.sampleSize),
		config.WithThreads(opts.threads),
		config.WithRandSeed(opts.randSeed),
	)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	chrs, err := readChromosomes(opts.fastaPaths)
	if err != nil {
		return errors.Wrap(err, "reading input genomes")
	}

	store, err := junction.NewStore(chrs, cfg.K)
	if err != nil {
		return errors.Wrap(err, "building junction store")
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", opts.outDir)
	}

	var reporter progress.Reporter = progress.NullReporter{}
	if !opts.quiet {
		reporter = progress.NewTextReporter(cmd.ErrOrStderr(), int64(len(store.SeedVertices())))
	}

	blocks, err := dispatch.Run(context.Background(), store, cfg, reporter)
	if err != nil {
		return errors.Wrap(err, "finding blocks")
	}

	survivors := trim.Trim(store, blocks, int(cfg.MinBlockSize))

	if err := writeOutputs(store, survivors, opts); err != nil {
		return err
	}

	return nil
}

func writeOutputs(store *junction.Store, survivors []block.Instance, opts *runOptions) error {
	gffPath := filepath.Join(opts.outDir, "blocks_coords.gff")
	gffFile, err := os.Create(gffPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", gffPath)
	}
	defer gffFile.Close()

	if err := trim.WriteGFF(gffFile, store, survivors); err != nil {
		return errors.Wrapf(err, "writing %s", gffPath)
	}

	if !opts.writeFasta {
		return nil
	}

	fastaPath := filepath.Join(opts.outDir, "blocks_sequences.fasta")
	fastaFile, err := os.Create(fastaPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", fastaPath)
	}
	defer fastaFile.Close()

	if err := trim.WriteFASTA(fastaFile, store, survivors); err != nil {
		return errors.Wrapf(err, "writing %s", fastaPath)
	}

	return nil
}

// readChromosomes loads every sequence in every named FASTA file into
// junction.Chromosome records, in file-then-in-file order.
func readChromosomes(paths []string) ([]junction.Chromosome, error) {
	var out []junction.Chromosome

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", path)
		}

		sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
		for sc.Next() {
			s := sc.Seq().(*linear.Seq)
			out = append(out, junction.Chromosome{
				Name:     s.ID,
				Sequence: lettersToBytes(s.Seq),
			})
		}
		err = sc.Error()
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	}

	return out, nil
}

func lettersToBytes(letters alphabet.Letters) []byte {
	out := make([]byte, len(letters))
	for i, l := range letters {
		out[i] = byte(l)
	}

	return out
}
