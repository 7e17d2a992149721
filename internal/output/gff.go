// internal/output/gff.go
package output

import (
	"io"
	"strconv"

	"cmsift-core/cmsearch"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
)

func gffStrand(s int) seq.Strand {
	switch {
	case s > 0:
		return seq.Plus
	case s < 0:
		return seq.Minus
	}
	return seq.None
}

// ToGFF converts a record to a biogo GFF2 feature on the hit sequence.
// The feature interval is the hit interval; the model coordinates travel
// as attributes.
func ToGFF(r *cmsearch.Record) *gff.Feature {
	score := r.Hit.Score
	f := &gff.Feature{
		SeqName:    r.Hit.ID,
		Source:     r.Source,
		Feature:    r.PrimaryTag,
		FeatStart:  r.Hit.Start - 1, // biogo features are 0-based internally
		FeatEnd:    r.Hit.End,
		FeatScore:  &score,
		FeatStrand: gffStrand(r.Hit.Strand),
		FeatFrame:  gff.NoFrame,
	}
	attrs := gff.Attributes{}
	if r.Query.ID != "" {
		attrs = append(attrs, gff.Attribute{Tag: "Model", Value: r.Query.ID})
	}
	if r.Accession != "" {
		attrs = append(attrs, gff.Attribute{Tag: "Accession", Value: r.Accession})
	}
	attrs = append(attrs, gff.Attribute{
		Tag:   "ModelRange",
		Value: strconv.Itoa(r.Query.Start) + " " + strconv.Itoa(r.Query.End),
	})
	f.FeatAttributes = attrs
	return f
}

// WriteGFF renders records as GFF2, one feature per record.
func WriteGFF(w io.Writer, list []*cmsearch.Record) error {
	gw := gff.NewWriter(w, 60, true)
	for _, r := range list {
		if _, err := gw.Write(ToGFF(r)); err != nil {
			return err
		}
	}
	return nil
}
