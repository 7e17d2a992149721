// core/cmsearch/config.go
package cmsearch

// Defaults stamped onto records when the corresponding Config field is empty.
const (
	DefaultSource         = "Infernal"
	DefaultPrimaryTag     = "misc_binding"
	DefaultProgramVersion = "0.71"
)

// Config is the immutable parser configuration. The zero value is usable:
// every record with a positive score is emitted, with default labels.
// None of these fields affect how the report text is parsed.
type Config struct {
	// MinScore is the strict lower bound on the bit score; hits scoring
	// at or below it are skipped.
	MinScore float64

	// Model is the covariance-model identifier stamped on the query side.
	Model string

	// Accession is an external accession for the model (e.g. an Rfam ID).
	Accession string

	// Source names the program that produced the report.
	Source string

	// PrimaryTag labels the kind of feature a record represents.
	PrimaryTag string

	// QueryDesc is a free-text descriptor for the query model.
	QueryDesc string

	// ProgramVersion is the report-producing tool's version.
	ProgramVersion string

	// Warn, when non-nil, receives diagnostics for recoverable oddities
	// (a block line shorter than the established column window).
	Warn func(format string, args ...any)
}

func (c Config) withDefaults() Config {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.PrimaryTag == "" {
		c.PrimaryTag = DefaultPrimaryTag
	}
	if c.ProgramVersion == "" {
		c.ProgramVersion = DefaultProgramVersion
	}
	return c
}

func (c Config) warnf(format string, args ...any) {
	if c.Warn != nil {
		c.Warn(format, args...)
	}
}
