// core/cmsearch/record.go
package cmsearch

import "strings"

// Feature is one side of an alignment record: a named, scored interval.
// Coordinates are 1-based and inclusive with Start <= End.
type Feature struct {
	ID     string
	Start  int
	End    int
	Strand int // +1 / -1 for the hit side, 0 for the model side
	Score  float64
}

// Record pairs a query model region with the matched region of a target
// sequence, plus the four reconstructed alignment rows. Both sides carry
// the same bit score.
type Record struct {
	Query Feature // covariance model side; Start is always 1, Strand 0
	Hit   Feature

	Structure string // secondary-structure row
	ModelLine string // model consensus row
	Midline   string // match row
	HitLine   string // target sequence row

	// SequenceName is the raw name from the "sequence:" line; Hit.ID is
	// the accession extracted from it, or the raw name unchanged.
	SequenceName string

	// Labels stamped from the parser configuration.
	Source         string
	PrimaryTag     string
	QueryDesc      string
	Accession      string
	ProgramVersion string

	// SourceFile is filled by callers that track which report a record
	// came from; the parser itself leaves it empty.
	SourceFile string
}

// HitUngapped returns the hit row with gap and whitespace characters
// removed, suitable for FASTA output.
func (r *Record) HitUngapped() string {
	var b strings.Builder
	b.Grow(len(r.HitLine))
	for _, c := range r.HitLine {
		switch c {
		case '-', '.', ' ', '\t':
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
