package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders a report suitable for pasting into a document
type MarkdownFormatter struct{}

// Format returns FormatMarkdown
func (MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report as markdown tables
func (MarkdownFormatter) Render(w io.Writer, result *Result) error {
	r := result.Report
	var b strings.Builder

	fmt.Fprintf(&b, "## TCO Comparison (%s)\n\n", years(r.Years))

	b.WriteString("| | On-Premises | Cloud |\n")
	b.WriteString("|---|---:|---:|\n")
	fmt.Fprintf(&b, "| Initial CapEx | %s | %s |\n", FormatCurrency(r.OnPrem.InitialCapex), "$0")
	fmt.Fprintf(&b, "| Annual Cost | %s | %s |\n", FormatCurrency(r.OnPrem.AnnualOpex), FormatCurrency(r.Cloud.AnnualTotal))
	fmt.Fprintf(&b, "| Monthly Cost | %s | %s |\n", FormatCurrency(r.OnPrem.MonthlyAverage), FormatCurrency(r.Cloud.MonthlyTotal))
	fmt.Fprintf(&b, "| **Total %d-Year TCO** | **%s** | **%s** |\n\n", r.Years, FormatCurrency(r.OnPrem.TotalTCO), FormatCurrency(r.Cloud.TotalTCO))

	fmt.Fprintf(&b, "- Cost difference: %s\n", FormatCurrency(r.Comparison.Savings()))
	fmt.Fprintf(&b, "- Percentage: %s\n", FormatPercent(r.Comparison))
	fmt.Fprintf(&b, "- Winner: **%s**\n\n", r.Comparison.Winner.Label())
	fmt.Fprintf(&b, "> %s\n", Summary(r))

	_, err := io.WriteString(w, b.String())
	return err
}
