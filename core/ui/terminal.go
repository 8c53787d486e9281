// Package ui - Terminal user interface
// Colored panels and tables for rendering a TCO report in a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// Color applies c to text unless color is disabled
func (w *Writer) Color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.Color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s%s", w.Color(Green, "✓ "), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println("%s%s", w.Color(Yellow, "⚠ "), fmt.Sprintf(format, args...))
}

// Panel is a boxed list of label/value lines
type Panel struct {
	w      *Writer
	title  string
	accent string
	rows   [][2]string
	total  [2]string
}

// NewPanel creates a panel drawn in the accent color
func (w *Writer) NewPanel(title, accent string) *Panel {
	return &Panel{w: w, title: title, accent: accent}
}

// AddRow adds a label/value line
func (p *Panel) AddRow(label, value string) {
	p.rows = append(p.rows, [2]string{label, value})
}

// SetTotal sets the emphasized closing line
func (p *Panel) SetTotal(label, value string) {
	p.total = [2]string{label, value}
}

// Render prints the panel
func (p *Panel) Render() {
	labelWidth, valueWidth := 0, 0
	for _, r := range append(p.rows, p.total) {
		labelWidth = max(labelWidth, utf8.RuneCountInString(r[0]))
		valueWidth = max(valueWidth, utf8.RuneCountInString(r[1]))
	}
	inner := max(labelWidth+valueWidth+6, utf8.RuneCountInString(p.title)+4)

	line := func(label, value, c string) {
		gap := inner - 4 - utf8.RuneCountInString(label) - utf8.RuneCountInString(value)
		body := "  " + label + strings.Repeat(" ", gap) + value + "  "
		p.w.Println("%s%s%s", p.w.Color(p.accent, "│"), p.w.Color(c, body), p.w.Color(p.accent, "│"))
	}

	top := "─ " + p.title + " " + strings.Repeat("─", inner-utf8.RuneCountInString(p.title)-3)
	p.w.Println("%s", p.w.Color(p.accent, "╭"+top+"╮"))
	for _, r := range p.rows {
		line(r[0], r[1], "")
	}
	if p.total[0] != "" {
		p.w.Println("%s", p.w.Color(p.accent, "├"+strings.Repeat("─", inner)+"┤"))
		line(p.total[0], p.total[1], Bold)
	}
	p.w.Println("%s", p.w.Color(p.accent, "╰"+strings.Repeat("─", inner)+"╯"))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		t.widths[i] = max(t.widths[i], utf8.RuneCountInString(row[i]))
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.Color(Bold, t.format(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.format(row))
	}
}

func (t *Table) format(cells []string) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = c + strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(c))
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}
