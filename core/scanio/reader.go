// core/scanio/reader.go
package scanio

import (
	"bufio"
	"fmt"
	"io"
)

// Reader supplies one text line at a time with a one-line pushback buffer.
// PushBack hands the most recent line back so the next Pull re-reads it;
// at most one line is ever pending.
type Reader struct {
	sc      *bufio.Scanner
	pending *string
	lineno  int
}

// NewReader wraps r. Lines up to 1 MiB are accepted; alignment rows are
// orders of magnitude shorter in practice.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	return &Reader{sc: sc}
}

// Pull returns the next line without its trailing newline. It returns
// io.EOF once input is exhausted.
func (r *Reader) Pull() (string, error) {
	if r.pending != nil {
		line := *r.pending
		r.pending = nil
		return line, nil
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("scanio: line %d: %w", r.lineno+1, err)
		}
		return "", io.EOF
	}
	r.lineno++
	return r.sc.Text(), nil
}

// PushBack stores line so the next Pull returns it again. Pushing while a
// line is already pending is a caller bug.
func (r *Reader) PushBack(line string) {
	if r.pending != nil {
		panic("scanio: pushback buffer already holds a line")
	}
	r.pending = &line
}

// LineNumber reports the number of the line most recently read from the
// underlying stream (1-based; 0 before the first Pull).
func (r *Reader) LineNumber() int { return r.lineno }
