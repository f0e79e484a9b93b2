package schema

// OutputMode selects the rendering format for tabular results.
type OutputMode string

// Supported output modes for the stats command.
const (
	TextOut    OutputMode = "text"
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// IsValid reports whether the output mode is one of the supported formats.
func (m OutputMode) IsValid() bool {
	switch m {
	case TextOut, CSVOut, JSONOut, ParquetOut:
		return true
	default:
		return false
	}
}
