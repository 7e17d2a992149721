// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"cmsift-core/cmsearch"
	"cmsift/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs []string // report files; "-" reads stdin

	// Filtering
	MinScore float64

	// Labels stamped on every record
	Model          string
	Accession      string
	QueryDesc      string
	Source         string
	PrimaryTag     string
	ProgramVersion string

	// Output
	Output          string // text | json | gff | fasta
	Sort            bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: convert cmsearch text reports into alignment records

Reads one or more cmsearch reports (plain or gzip, '-' for stdin) and
emits one record per hit whose bit score beats --min-score.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Leftover positional arguments are treated as input files.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var inputs stringSlice
	fs.Var(&inputs, "input", "cmsearch report file (repeatable or '-') [-]")

	fs.Float64Var(&opt.MinScore, "min-score", 0, "emit only hits scoring strictly above this bit score [0]")

	fs.StringVar(&opt.Model, "model", "", "covariance model identifier stamped on the query side")
	fs.StringVar(&opt.Accession, "accession", "", "external accession for the model (e.g. Rfam ID)")
	fs.StringVar(&opt.QueryDesc, "query-desc", "", "free-text descriptor for the query model")
	fs.StringVar(&opt.Source, "source", "", "source label ["+cmsearch.DefaultSource+"]")
	fs.StringVar(&opt.PrimaryTag, "primary-tag", "", "primary feature tag ["+cmsearch.DefaultPrimaryTag+"]")
	fs.StringVar(&opt.ProgramVersion, "program-version", "", "report-producing tool version ["+cmsearch.DefaultProgramVersion+"]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | gff | fasta [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort records for determinism (SequenceID,Start,End,Score) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no record passes the filter [1]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Inputs = append([]string(nil), inputs...)
	opt.Inputs = append(opt.Inputs, fs.Args()...)
	if len(opt.Inputs) == 0 {
		opt.Inputs = []string{"-"}
	}
	opt.Header = !noHeader

	// Validation
	switch opt.Output {
	case "text", "json", "gff", "fasta":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.NoMatchExitCode < 0 {
		return opt, errors.New("--no-match-exit-code must be >= 0")
	}
	for _, in := range opt.Inputs {
		if in == "" {
			return opt, errors.New("empty --input path")
		}
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
