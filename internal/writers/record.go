// internal/writers/record.go
package writers

import (
	"fmt"
	"io"

	"cmsift-core/cmsearch"
	"cmsift/internal/common"
	"cmsift/internal/output"
)

// StartRecordWriter spins up a writer goroutine for parsed records. The
// caller sends records on the returned channel, closes it, then receives
// exactly one (possibly nil) error. Formats that stream (text, fasta) only
// buffer when --sort asks for deterministic order; json and gff always
// buffer since their envelope needs the full set.
func StartRecordWriter(out io.Writer, format string, sorted bool, header bool, bufSize int) (chan<- *cmsearch.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan *cmsearch.Record, bufSize)
	errCh := make(chan error, 1)

	drain := func() []*cmsearch.Record {
		var buf []*cmsearch.Record
		for r := range in {
			buf = append(buf, r)
		}
		if sorted {
			common.SortRecords(buf)
		}
		return buf
	}

	go func() {
		var err error
		switch format {
		case "json":
			err = output.WriteJSON(out, drain())

		case "gff":
			err = output.WriteGFF(out, drain())

		case "fasta":
			if sorted {
				err = output.WriteFASTA(out, drain())
			} else {
				err = output.StreamFASTA(out, in)
			}

		case "text":
			if sorted {
				err = output.WriteText(out, drain(), header)
			} else {
				err = output.StreamText(out, in, header)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Keep the sender unblocked even on early error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
