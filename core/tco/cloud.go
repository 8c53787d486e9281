package tco

import "github.com/shopspring/decimal"

// Sum returns the monthly recurring total across all cloud cost lines
func (c CloudInputs) Sum() decimal.Decimal {
	return decimal.Sum(c.Compute, c.Storage, c.Network, c.Backup, c.Security, c.Support, c.DataTransfer)
}

// ComputeCloud derives the cloud monthly, annual and total cost. Cloud is
// modeled as pure recurring opex; there is no capex term.
func ComputeCloud(in CloudInputs, years int) CloudResult {
	years = normalizeYears(years)

	monthly := in.Sum()
	annual := monthly.Mul(twelve)

	return CloudResult{
		MonthlyTotal: monthly,
		AnnualTotal:  annual,
		TotalTCO:     annual.Mul(decimal.NewFromInt(int64(years))),
	}
}
