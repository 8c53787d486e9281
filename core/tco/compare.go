package tco

import "github.com/shopspring/decimal"

// Compare reports the signed difference between the two totals, the
// difference as a percentage of the on-prem total and the cheaper option.
//
// A difference of exactly zero is reported as an on-prem win. When the
// on-prem total is zero the percentage is 0 and PercentageDefined is false.
func Compare(onPremTotal, cloudTotal decimal.Decimal) ComparisonResult {
	diff := onPremTotal.Sub(cloudTotal)

	result := ComparisonResult{
		Difference: diff,
		Percentage: decimal.Zero,
		Winner:     WinnerOnPrem,
	}

	if diff.IsPositive() {
		result.Winner = WinnerCloud
	}

	if !onPremTotal.IsZero() {
		result.Percentage = diff.Mul(hundred).Div(onPremTotal).Round(1)
		result.PercentageDefined = true
	}

	return result
}
