// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"cmsift-core/cmsearch"
	"cmsift/pkg/api"
)

// ToAPIRecord converts a domain record to the stable wire schema (v1).
func ToAPIRecord(r *cmsearch.Record) api.RecordV1 {
	return api.RecordV1{
		Model:        r.Query.ID,
		Accession:    r.Accession,
		QueryDesc:    r.QueryDesc,
		ModelStart:   r.Query.Start,
		ModelEnd:     r.Query.End,
		SequenceID:   r.Hit.ID,
		SequenceName: r.SequenceName,
		HitStart:     r.Hit.Start,
		HitEnd:       r.Hit.End,
		Strand:       r.Hit.Strand,
		Score:        r.Hit.Score,
		Structure:    r.Structure,
		ModelLine:    r.ModelLine,
		Midline:      r.Midline,
		HitLine:      r.HitLine,
		Source:       r.Source,
		PrimaryTag:   r.PrimaryTag,
		ProgramVer:   r.ProgramVersion,
		SourceFile:   r.SourceFile,
	}
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []*cmsearch.Record) error {
	out := make([]api.RecordV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRecord(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
