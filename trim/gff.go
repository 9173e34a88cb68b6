// File: gff.go
// Role: blocks_coords.gff output (spec.md §4.H "GenerateOutput"), written
// with biogo's gff writer the way the rest of the biogo-dependent examples
// in the pack do.
package trim

import (
	"io"
	"strconv"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/pkg/errors"

	"github.com/wangdi2014/SibeliaZ/block"
	"github.com/wangdi2014/SibeliaZ/junction"
)

// WriteGFF writes one feature per surviving block instance to w, named by
// its chromosome and tagged with its block id.
func WriteGFF(w io.Writer, store *junction.Store, instances []block.Instance) error {
	gw := gff.NewWriter(w, 60, true)

	gf := &gff.Feature{
		Source:    "sibeliaz-lcb",
		Feature:   "block",
		FeatFrame: gff.NoFrame,
	}

	for _, inst := range instances {
		gf.SeqName = store.ChrDescription(inst.Chr)
		gf.FeatStart = inst.Start
		gf.FeatEnd = inst.End
		if gf.FeatStart == gf.FeatEnd {
			gf.FeatEnd++
		}
		if inst.Sign() < 0 {
			gf.FeatStrand = seq.Minus
		} else {
			gf.FeatStrand = seq.Plus
		}
		gf.FeatAttributes = gff.Attributes{
			{Tag: "ID", Value: strconv.FormatInt(inst.AbsID(), 10)},
		}

		if _, err := gw.Write(gf); err != nil {
			return errors.Wrapf(err, "writing block %d on %s", inst.AbsID(), gf.SeqName)
		}
	}

	return nil
}
