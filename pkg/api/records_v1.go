// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON schema for alignment records.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	Model        string  `json:"model,omitempty"`
	Accession    string  `json:"accession,omitempty"`
	QueryDesc    string  `json:"query_desc,omitempty"`
	ModelStart   int     `json:"model_start"`
	ModelEnd     int     `json:"model_end"`
	SequenceID   string  `json:"sequence_id"`
	SequenceName string  `json:"sequence_name,omitempty"`
	HitStart     int     `json:"hit_start"`
	HitEnd       int     `json:"hit_end"`
	Strand       int     `json:"strand"`
	Score        float64 `json:"score"`
	Structure    string  `json:"structure,omitempty"`
	ModelLine    string  `json:"model_line,omitempty"`
	Midline      string  `json:"midline,omitempty"`
	HitLine      string  `json:"hit_line,omitempty"`
	Source       string  `json:"source,omitempty"`
	PrimaryTag   string  `json:"primary_tag,omitempty"`
	ProgramVer   string  `json:"program_version,omitempty"`
	SourceFile   string  `json:"source_file,omitempty"`
}
