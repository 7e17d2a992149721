// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"cmsift-core/cmsearch"
)

// WriteFASTA writes each record's gap-stripped hit sequence as a FASTA
// record. Records with an empty hit row (e.g. truncated reports) are
// skipped.
func WriteFASTA(w io.Writer, list []*cmsearch.Record) error {
	for _, r := range list {
		seq := r.HitUngapped()
		if seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(
			w,
			">%s/%d-%d strand=%s score=%.2f model=%s\n%s\n",
			r.Hit.ID, r.Hit.Start, r.Hit.End,
			strandSymbol(r.Hit.Strand), r.Hit.Score, r.Query.ID, seq,
		); err != nil {
			return err
		}
	}
	return nil
}

// StreamFASTA streams FASTA records from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan *cmsearch.Record) error {
	for r := range in {
		if err := WriteFASTA(w, []*cmsearch.Record{r}); err != nil {
			return err
		}
	}
	return nil
}
