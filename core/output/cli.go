package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"tco-calculator/core/tco"
	"tco-calculator/core/ui"
)

// CLIFormatter renders the report as colored terminal panels
type CLIFormatter struct {
	noColor bool
}

// NewCLIFormatter creates a terminal formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the on-prem, cloud and comparison panels
func (f *CLIFormatter) Render(out io.Writer, result *Result) error {
	w := ui.NewWriter(out, f.noColor)
	r := result.Report
	total := fmt.Sprintf("Total %d-Year TCO", r.Years)

	w.Header("TCO Calculator: Cloud vs On-Premises")
	w.Println("Analysis Timeframe: %s", years(r.Years))
	w.Println("")

	onPrem := w.NewPanel("On-Premises TCO", ui.Yellow)
	onPrem.AddRow("Initial CapEx", FormatCurrency(r.OnPrem.InitialCapex))
	onPrem.AddRow("Annual OpEx", FormatCurrency(r.OnPrem.AnnualOpex))
	onPrem.AddRow("Monthly Average", FormatCurrency(r.OnPrem.MonthlyAverage))
	onPrem.SetTotal(total, FormatCurrency(r.OnPrem.TotalTCO))
	onPrem.Render()
	w.Println("")

	cloud := w.NewPanel("Cloud TCO", ui.Blue)
	cloud.AddRow("Monthly Cost", FormatCurrency(r.Cloud.MonthlyTotal))
	cloud.AddRow("Annual Cost", FormatCurrency(r.Cloud.AnnualTotal))
	cloud.AddRow("No CapEx Required", FormatCurrency(decimal.Zero))
	cloud.SetTotal(total, FormatCurrency(r.Cloud.TotalTCO))
	cloud.Render()
	w.Println("")

	accent := ui.Red
	if r.Comparison.Winner == tco.WinnerCloud {
		accent = ui.Green
	}
	analysis := w.NewPanel("Cost Analysis", accent)
	analysis.AddRow("Cost Difference", FormatCurrency(r.Comparison.Savings()))
	analysis.AddRow("Percentage", FormatPercent(r.Comparison))
	analysis.SetTotal("Winner", r.Comparison.Winner.Label())
	analysis.Render()
	w.Println("")

	if !r.Comparison.PercentageDefined {
		w.Warning("on-premises total is zero; percentage is not defined")
	}
	w.Success("%s", Summary(r))
	return nil
}
