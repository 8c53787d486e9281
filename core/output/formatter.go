// Package output provides output formatting for TCO reports.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"

	"tco-calculator/core/tco"
	"tco-calculator/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Result contains everything a formatter renders
type Result struct {
	// Scenario is the coerced input snapshot
	Scenario tco.Scenario `json:"scenario"`

	// Report is the evaluation of Scenario
	Report tco.Report `json:"report"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the evaluation was performed
	Timestamp string `json:"timestamp"`

	// InputHash is a hash of the coerced inputs
	InputHash string `json:"input_hash,omitempty"`

	// Version is the tool version
	Version string `json:"version"`

	// Source is where the inputs came from (flags, file path, api)
	Source string `json:"source,omitempty"`
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry with every built-in formatter
func DefaultRegistry(noColor bool) *Registry {
	r := NewRegistry()
	r.Register(NewCLIFormatter(noColor))
	r.Register(JSONFormatter{})
	r.Register(MarkdownFormatter{})
	return r
}

// Register adds a formatter, replacing any with the same format
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format type
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.NotSupported("output format " + string(format))
	}
	return f, nil
}

// Formats lists registered formats in sorted order
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
