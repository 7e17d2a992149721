package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_id\tmodel\thit_start\thit_end\tstrand\tscore\tmodel_start\tmodel_end\tsource_file"
