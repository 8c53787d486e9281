package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tco-calculator/core/tco"
)

var (
	printer  = message.NewPrinter(language.AmericanEnglish)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// FormatCurrency renders d as whole US dollars with grouped thousands,
// e.g. "$1,233,750" or "-$25,000"
func FormatCurrency(d decimal.Decimal) string {
	whole := d.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupDigits(whole.Abs())
}

// groupDigits formats a non-negative integral decimal with en-US grouping.
// Amounts past int64 are grouped by hand since the printer only takes
// machine integers.
func groupDigits(n decimal.Decimal) string {
	if n.LessThanOrEqual(maxInt64) {
		return printer.Sprintf("%d", n.IntPart())
	}

	digits := n.String()
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent renders the unsigned comparison percentage, or N/A when the
// on-prem total is zero
func FormatPercent(c tco.ComparisonResult) string {
	if !c.PercentageDefined {
		return "N/A"
	}
	return c.AbsPercentage().StringFixed(1) + "%"
}

// Summary is the one-line verdict for a report
func Summary(r tco.Report) string {
	c := r.Comparison
	return fmt.Sprintf("%s saves %s (%s) over %s",
		c.Winner.Label(), FormatCurrency(c.Savings()), FormatPercent(c), years(r.Years))
}

func years(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}
