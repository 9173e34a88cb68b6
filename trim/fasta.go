// File: fasta.go
// Role: per-block FASTA dump (spec.md §4.H "ListBlocksSequences"), an
// optional companion to the GFF coordinates file. Grounded on the pack's own
// biogo read-side usage (alphabet.DNAgapped + linear.NewSeq); biogo's
// seqio/fasta.Writer mirrors its Reader one for one, so no separate writer
// example was needed to ground this call shape.
package trim

import (
	"io"
	"strconv"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"

	"github.com/wangdi2014/SibeliaZ/block"
	"github.com/wangdi2014/SibeliaZ/junction"
)

// WriteFASTA writes one record per surviving block instance to w: the
// chromosome slice spanning the instance, reverse-complemented when the
// instance sits on the negative strand.
func WriteFASTA(w io.Writer, store *junction.Store, instances []block.Instance) error {
	fw := fasta.NewWriter(w, 80)

	for _, inst := range instances {
		bases := extractBases(store, inst)

		id := recordID(inst)
		s := linear.NewSeq(id, alphabet.BytesToLetters(bases), alphabet.DNAgapped)
		if _, err := fw.Write(s); err != nil {
			return errors.Wrapf(err, "writing fasta record %s", id)
		}
	}

	return nil
}

func extractBases(store *junction.Store, inst block.Instance) []byte {
	seq := store.ChrSequence(inst.Chr)
	k := store.K()

	start := inst.Start
	end := inst.End - 1 + k
	if end > len(seq) {
		end = len(seq)
	}

	span := append([]byte(nil), seq[start:end]...)
	if inst.Sign() < 0 {
		return reverseComplementBases(span)
	}

	return span
}

func reverseComplementBases(b []byte) []byte {
	out := make([]byte, len(b))
	comp := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'a': 't', 't': 'a', 'c': 'g', 'g': 'c'}
	for i, c := range b {
		r, ok := comp[c]
		if !ok {
			r = c
		}
		out[len(b)-1-i] = r
	}

	return out
}

func recordID(inst block.Instance) string {
	sign := "+"
	if inst.Sign() < 0 {
		sign = "-"
	}

	return "block_" + strconv.FormatInt(inst.AbsID(), 10) + "_chr" + strconv.Itoa(inst.Chr) + sign
}
