// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"cmsift-core/cmsearch"
)

func strandSymbol(s int) string {
	if s < 0 {
		return "-"
	}
	return "+"
}

// FormatRowTSV returns the base columns for one record (no trailing newline).
func FormatRowTSV(r *cmsearch.Record) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%.2f\t%d\t%d\t%s",
		r.Hit.ID, r.Query.ID,
		r.Hit.Start, r.Hit.End, strandSymbol(r.Hit.Strand),
		r.Hit.Score,
		r.Query.Start, r.Query.End,
		r.SourceFile,
	)
}

// WriteText prints one TSV line per record.
func WriteText(w io.Writer, list []*cmsearch.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText streams TSV lines from a channel to the writer.
func StreamText(w io.Writer, in <-chan *cmsearch.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
