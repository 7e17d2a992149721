package cmsearch

import (
	"io"
	"strings"
	"testing"
)

const indent = "           " // 11 columns, matches the hit-summary indent

// report joins lines into a cmsearch-style report body.
func report(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func collect(t *testing.T, in string, cfg Config) []*Record {
	t.Helper()
	p := NewParser(strings.NewReader(in), cfg)
	var recs []*Record
	for {
		r, err := p.Next()
		if err == io.EOF {
			return recs
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		recs = append(recs, r)
	}
}

func TestSingleHitMinusStrand(t *testing.T) {
	in := report(
		"sequence: seqA",
		"hit 1   :     120     45     30.5 bits",
		indent+"::<<__>>",
		indent+"AAA--AAA",
		indent+"  A  AA ",
		indent+"AAAGGAAA",
	)
	recs := collect(t, in, Config{Model: "RF00001"})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.Hit.Strand != -1 {
		t.Errorf("strand = %d, want -1", r.Hit.Strand)
	}
	if r.Hit.Start != 45 || r.Hit.End != 120 {
		t.Errorf("hit coords = %d..%d, want 45..120", r.Hit.Start, r.Hit.End)
	}
	if r.Query.Start != 1 || r.Query.End != 6 {
		t.Errorf("model coords = %d..%d, want 1..6", r.Query.Start, r.Query.End)
	}
	if r.Query.Score != 30.5 || r.Hit.Score != 30.5 {
		t.Errorf("scores = %v/%v, want 30.5 on both sides", r.Query.Score, r.Hit.Score)
	}
	if r.Query.Strand != 0 {
		t.Errorf("model strand = %d, want 0", r.Query.Strand)
	}
	if r.Structure != "::<<__>>" || r.ModelLine != "AAA--AAA" || r.HitLine != "AAAGGAAA" {
		t.Errorf("rows = %q %q %q", r.Structure, r.ModelLine, r.HitLine)
	}
	if r.SequenceName != "seqA" || r.Hit.ID != "seqA" {
		t.Errorf("names = %q %q", r.SequenceName, r.Hit.ID)
	}
	if r.Query.ID != "RF00001" {
		t.Errorf("model id = %q", r.Query.ID)
	}
	if r.Source != DefaultSource || r.PrimaryTag != DefaultPrimaryTag || r.ProgramVersion != DefaultProgramVersion {
		t.Errorf("defaults not applied: %q %q %q", r.Source, r.PrimaryTag, r.ProgramVersion)
	}
}

func TestMinScoreFilterIsStrict(t *testing.T) {
	in := report(
		"sequence: seqA",
		"hit 1   :     10     90     40.0 bits",
		indent+"::::",
		indent+"ACGU",
		indent+"ACGU",
		indent+"ACGU",
	)
	if recs := collect(t, in, Config{MinScore: 40}); len(recs) != 0 {
		t.Fatalf("score == minscore must be filtered, got %d records", len(recs))
	}
	if recs := collect(t, in, Config{MinScore: 39.9}); len(recs) != 1 {
		t.Fatalf("score above minscore must pass, got %d records", len(recs))
	}
}

func TestWrappedBlockConcatenation(t *testing.T) {
	in := report(
		"sequence: seqB",
		"hit 1   :     1     4     21.0 bits",
		indent+"<<",
		indent+"AA",
		indent+"AA",
		indent+"AA",
		"",
		indent+">>",
		indent+"BB",
		indent+"BB",
		indent+"BB",
	)
	recs := collect(t, in, Config{})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.ModelLine != "AABB" {
		t.Errorf("model row = %q, want AABB", r.ModelLine)
	}
	if r.Query.End != 4 {
		t.Errorf("model end = %d, want 4", r.Query.End)
	}
	if r.Structure != "<<>>" || r.HitLine != "AABB" {
		t.Errorf("rows = %q %q", r.Structure, r.HitLine)
	}
}

func TestBlankLineInsideCycle(t *testing.T) {
	in := report(
		"sequence: seqC",
		"hit 1   :     1     8     12.0 bits",
		indent+"::::::::",
		indent+"ACGUACGU",
		"",
		indent+"ACGUACGU",
		indent+"ACGUACGU",
	)
	recs := collect(t, in, Config{})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if r := recs[0]; r.Midline != "ACGUACGU" || r.HitLine != "ACGUACGU" {
		t.Errorf("blank line corrupted cycle: mid=%q hit=%q", r.Midline, r.HitLine)
	}
}

func TestHitWithoutBlockIsDiscarded(t *testing.T) {
	in := report(
		"sequence: seqD",
		"hit 1   :     1     10     50.0 bits",
		"hit 2   :     5     30     25.0 bits",
		indent+"::::",
		indent+"ACGU",
		indent+"ACGU",
		indent+"ACGU",
	)
	recs := collect(t, in, Config{})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.Hit.Start != 5 || r.Hit.End != 30 || r.Hit.Score != 25.0 {
		t.Errorf("record came from the wrong hit: %+v", r.Hit)
	}
}

func TestSequenceNamePersistsAcrossHits(t *testing.T) {
	in := report(
		"sequence: shared",
		"hit 1   :     1     4     10.0 bits",
		indent+"::::",
		indent+"ACGU",
		indent+"ACGU",
		indent+"ACGU",
		"hit 2   :     9     6     11.0 bits",
		indent+"::::",
		indent+"AC-U",
		indent+"AC U",
		indent+"ACAU",
	)
	recs := collect(t, in, Config{})
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	for i, r := range recs {
		if r.SequenceName != "shared" {
			t.Errorf("record %d sequence name = %q", i, r.SequenceName)
		}
	}
	if recs[1].Hit.Strand != -1 || recs[1].Hit.Start != 6 || recs[1].Hit.End != 9 {
		t.Errorf("second hit not normalized: %+v", recs[1].Hit)
	}
	if recs[1].Query.End != 3 {
		t.Errorf("gapped model row: end = %d, want 3", recs[1].Query.End)
	}
}

func TestTruncatedBlockAtEOF(t *testing.T) {
	in := "sequence: seqE\n" +
		"hit 1   :     1     4     15.0 bits\n" +
		indent + "::::\n" +
		indent + "ACGU\n" // midline and hit row missing
	recs := collect(t, in, Config{})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.ModelLine != "ACGU" || r.Midline != "" || r.HitLine != "" {
		t.Errorf("truncated rows = %q %q %q", r.ModelLine, r.Midline, r.HitLine)
	}
	if r.Query.End != 4 {
		t.Errorf("model end = %d, want 4", r.Query.End)
	}
}

func TestShortRowIsClippedWithDiagnostic(t *testing.T) {
	var warned []string
	in := report(
		"sequence: seqF",
		"hit 1   :     1     8     15.0 bits",
		indent+"::::::::",
		indent+"ACGUACGU",
		indent+"ACGU", // shorter than the established window
		indent+"ACGUACGU",
	)
	cfg := Config{Warn: func(f string, a ...any) { warned = append(warned, f) }}
	recs := collect(t, in, cfg)
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Midline != "ACGU" {
		t.Errorf("clipped midline = %q, want ACGU", recs[0].Midline)
	}
	if recs[0].HitLine != "ACGUACGU" {
		t.Errorf("row after short row = %q", recs[0].HitLine)
	}
	if len(warned) == 0 {
		t.Error("expected a clipping diagnostic")
	}
}

func TestMalformedHitSummary(t *testing.T) {
	for _, in := range []string{
		"sequence: s\nhit 1 : 12 45 not-a-number bits\n",
		"sequence: s\nhit 1 : twelve 45 30.5 bits\n",
		"sequence: s\nhit 1 : 12 45 30.5\n", // missing "bits"
	} {
		p := NewParser(strings.NewReader(in), Config{})
		if _, err := p.Next(); err == nil || err == io.EOF {
			t.Errorf("input %q: expected parse error, got %v", in, err)
		}
	}
}

func TestDeterministicReparse(t *testing.T) {
	in := report(
		"sequence: gb|AY123456.1|AY123456",
		"hit 1   :     200     100     33.0 bits",
		indent+"<<<<____",
		indent+"ACGU--GU",
		indent+"ACGU  GU",
		indent+"ACGUAAGU",
		"hit 2   :     300     400     8.0 bits",
		indent+"::::",
		indent+"ACGU",
		indent+"ACGU",
		indent+"ACGU",
	)
	a := collect(t, in, Config{MinScore: 10, Model: "RF00005"})
	b := collect(t, in, Config{MinScore: 10, Model: "RF00005"})
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("got %d/%d records, want 1/1 (second hit under threshold)", len(a), len(b))
	}
	if *a[0] != *b[0] {
		t.Errorf("re-parse differs:\n%+v\n%+v", *a[0], *b[0])
	}
	if a[0].Hit.ID != "AY123456.1" {
		t.Errorf("accession = %q, want AY123456.1", a[0].Hit.ID)
	}
}

func TestBannerProseIgnored(t *testing.T) {
	in := report(
		"CM 1: trna.cm",
		"sequence: seqG",
		"hit 1   :     3     14     22.0 bits",
		indent+"(((()))) ",
		indent+"GGGGCCCC ",
		indent+"GGGGCCCC ",
		indent+"GGGGCCCCU",
	)
	recs := collect(t, in, Config{})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
}

func TestHitUngapped(t *testing.T) {
	r := &Record{HitLine: "AC-GU.AA G"}
	if got := r.HitUngapped(); got != "ACGUAAG" {
		t.Errorf("HitUngapped = %q, want ACGUAAG", got)
	}
}
