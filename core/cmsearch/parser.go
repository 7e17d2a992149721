// core/cmsearch/parser.go

// Package cmsearch reconstructs alignment records from the textual report
// of an Infernal cmsearch run (the 0.71 column layout).
//
// A report interleaves three kinds of content:
//
//	sequence: <name>
//	hit <n> :  <start> <end>  <score> bits
//	           <structure row>
//	           <model row>
//	           <midline row>
//	           <hit sequence row>
//
// The four alignment rows repeat in a strict cycle; long alignments wrap
// across several such cycles that belong to the same hit and must be
// concatenated column-wise. The column window of every row is fixed by the
// leading-whitespace width of the very first structure row.
package cmsearch

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"cmsift-core/scanio"
)

var (
	sequenceRx = regexp.MustCompile(`^sequence:\s+(\S+)`)
	hitRx      = regexp.MustCompile(`^hit\s+(\d+)\s*:\s*(\d+)\s+(\d+)\s+(\S+)\s+bits`)
)

// structureSymbols are the characters a secondary-structure diagram row can
// begin with. Seeing one of them (after indentation) starts a block.
const structureSymbols = "<>{}[]():,_-."

// pendingHit holds the summary values for the hit whose alignment block has
// not been seen yet. It is consumed by at most one block.
type pendingHit struct {
	seqName string
	start   int
	end     int
	strand  int
	score   float64
}

// block accumulates the four alignment rows across one or more cycles.
type block struct {
	rows    [4]strings.Builder // structure, model, midline, hit
	offset  int
	width   int
	started bool
	n       int // non-blank lines consumed; role = n % 4
}

// Parser is a pull-based reader of cmsearch reports. It is not safe for
// concurrent use: the pushback buffer and cycle position are single-caller
// state.
type Parser struct {
	src     *scanio.Reader
	cfg     Config
	seqName string
	pending *pendingHit
}

// NewParser returns a Parser reading the report from r.
func NewParser(r io.Reader, cfg Config) *Parser {
	return &Parser{src: scanio.NewReader(r), cfg: cfg.withDefaults()}
}

// Next returns the next alignment record whose bit score exceeds the
// configured minimum, or io.EOF once the report is exhausted. Hits that
// fail the score filter are skipped silently. A hit-summary line whose
// numeric fields do not parse is a fatal error carrying the line number.
func (p *Parser) Next() (*Record, error) {
	for {
		line, err := p.src.Pull()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := sequenceRx.FindStringSubmatch(trimmed); m != nil {
			p.seqName = m[1]
			continue
		}

		if strings.HasPrefix(trimmed, "hit") {
			if err := p.parseHitSummary(trimmed); err != nil {
				return nil, err
			}
			continue
		}

		if isStructureStart(trimmed) {
			p.src.PushBack(line)
			blk, err := p.assemble()
			if err != nil {
				return nil, err
			}
			if rec := p.build(blk); rec != nil {
				return rec, nil
			}
			continue
		}

		// Banner or other prose; not part of any hit.
	}
}

// parseHitSummary records a "hit N : start end score bits" line as the new
// pending hit, normalizing coordinates so start <= end.
func (p *Parser) parseHitSummary(trimmed string) error {
	m := hitRx.FindStringSubmatch(trimmed)
	if m == nil {
		return fmt.Errorf("cmsearch: line %d: malformed hit summary %q", p.src.LineNumber(), trimmed)
	}
	start, err := strconv.Atoi(m[2])
	if err != nil {
		return fmt.Errorf("cmsearch: line %d: bad hit start %q: %v", p.src.LineNumber(), m[2], err)
	}
	end, err := strconv.Atoi(m[3])
	if err != nil {
		return fmt.Errorf("cmsearch: line %d: bad hit end %q: %v", p.src.LineNumber(), m[3], err)
	}
	score, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return fmt.Errorf("cmsearch: line %d: bad bit score %q: %v", p.src.LineNumber(), m[4], err)
	}
	strand := 1
	if start > end {
		start, end = end, start
		strand = -1
	}
	// An unconsumed previous hit is simply overwritten.
	p.pending = &pendingHit{
		seqName: p.seqName,
		start:   start,
		end:     end,
		strand:  strand,
		score:   score,
	}
	return nil
}

// assemble consumes one alignment block: non-blank lines in a strict 4-role
// cycle until a "sequence"/"hit" line (pushed back) or end of input. Blank
// lines are skipped and do not advance the cycle. The column window is
// discovered from the first structure row; the width is re-measured on each
// later structure row, the offset never changes.
func (p *Parser) assemble() (*block, error) {
	b := &block{}
	for {
		line, err := p.src.Pull()
		if err == io.EOF {
			return b, nil // trailing truncation is tolerated
		}
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "sequence") || strings.HasPrefix(line, "hit") {
			p.src.PushBack(line)
			return b, nil
		}
		b.consume(line, p)
	}
}

func (b *block) consume(line string, p *Parser) {
	role := b.n % 4
	if role == 0 {
		if !b.started {
			b.offset = leadingSpace(line)
			b.started = true
		}
		b.width = len(line) - b.offset
		if b.width < 0 {
			b.width = 0
		}
	}
	lo, hi := b.offset, b.offset+b.width
	if lo > len(line) {
		lo = len(line)
	}
	if hi > len(line) {
		// Shorter than the established window: clip rather than fail.
		p.cfg.warnf("cmsearch: line %d: alignment row shorter than column window (%d < %d), clipping",
			p.src.LineNumber(), len(line), b.offset+b.width)
		hi = len(line)
	}
	b.rows[role].WriteString(line[lo:hi])
	b.n++
}

// build turns an assembled block plus the pending hit into a record, or
// returns nil when the block has no pending hit or the score does not beat
// the threshold. The pending hit is consumed either way.
func (p *Parser) build(b *block) *Record {
	hit := p.pending
	p.pending = nil
	if hit == nil || b.n == 0 {
		return nil
	}
	if hit.score <= p.cfg.MinScore {
		return nil
	}

	model := b.rows[1].String()
	rec := &Record{
		Query: Feature{
			ID:    p.cfg.Model,
			Start: 1,
			End:   countLetters(model),
			Score: hit.score,
		},
		Hit: Feature{
			ID:     ExtractAccession(hit.seqName),
			Start:  hit.start,
			End:    hit.end,
			Strand: hit.strand,
			Score:  hit.score,
		},
		Structure:      b.rows[0].String(),
		ModelLine:      model,
		Midline:        b.rows[2].String(),
		HitLine:        b.rows[3].String(),
		SequenceName:   hit.seqName,
		Source:         p.cfg.Source,
		PrimaryTag:     p.cfg.PrimaryTag,
		QueryDesc:      p.cfg.QueryDesc,
		Accession:      p.cfg.Accession,
		ProgramVersion: p.cfg.ProgramVersion,
	}
	return rec
}

func isStructureStart(trimmed string) bool {
	return strings.IndexByte(structureSymbols, trimmed[0]) >= 0
}

func leadingSpace(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}

// countLetters counts alphabetic characters, i.e. the ungapped length of an
// aligned row.
func countLetters(s string) int {
	n := 0
	for _, c := range s {
		if unicode.IsLetter(c) {
			n++
		}
	}
	return n
}
