package writers

import (
	"bytes"
	"strings"
	"testing"

	"cmsift-core/cmsearch"
)

func mk(id string, start int) *cmsearch.Record {
	return &cmsearch.Record{
		Query: cmsearch.Feature{ID: "RF1", Start: 1, End: 4, Score: 12},
		Hit:   cmsearch.Feature{ID: id, Start: start, End: start + 9, Strand: 1, Score: 12},
		HitLine: "ACGU",
	}
}

func TestStartRecordWriterTextSorted(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartRecordWriter(&buf, "text", true, false, 4)
	in <- mk("b", 1)
	in <- mk("a", 1)
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "a\t") || !strings.HasPrefix(lines[1], "b\t") {
		t.Fatalf("sorted text output wrong:\n%s", buf.String())
	}
}

func TestStartRecordWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartRecordWriter(&buf, "xml", false, true, 1)
	in <- mk("a", 1)
	close(in)
	if err := <-errCh; err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestStartRecordWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartRecordWriter(&buf, "json", false, true, 1)
	in <- mk("a", 5)
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	if !strings.Contains(buf.String(), `"sequence_id": "a"`) {
		t.Fatalf("json output wrong:\n%s", buf.String())
	}
}
