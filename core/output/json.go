package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders the full result as indented JSON
type JSONFormatter struct{}

// Format returns FormatJSON
func (JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the result along with the display summary
func (JSONFormatter) Render(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*Result
		Summary string `json:"summary"`
	}{result, Summary(result.Report)})
}
