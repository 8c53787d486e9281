package output

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"tco-calculator/core/tco"
)

// NewResult evaluates a scenario and attaches execution metadata
func NewResult(s tco.Scenario, source, version string) *Result {
	return &Result{
		Scenario: s,
		Report:   tco.Evaluate(s),
		Metadata: Metadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			InputHash: InputHash(s),
			Version:   version,
			Source:    source,
		},
	}
}

// InputHash is a stable digest of the coerced inputs; equal scenarios
// always hash equal regardless of how their raw text was written
func InputHash(s tco.Scenario) string {
	data, _ := json.Marshal(s)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Display holds the currency-formatted strings a UI shows
type Display struct {
	OnPrem struct {
		InitialCapex   string `json:"initial_capex"`
		AnnualOpex     string `json:"annual_opex"`
		MonthlyAverage string `json:"monthly_average"`
		TotalTCO       string `json:"total_tco"`
	} `json:"on_prem"`
	Cloud struct {
		MonthlyTotal string `json:"monthly_total"`
		AnnualTotal  string `json:"annual_total"`
		TotalTCO     string `json:"total_tco"`
	} `json:"cloud"`
	Comparison struct {
		Difference string `json:"difference"`
		Percentage string `json:"percentage"`
		Winner     string `json:"winner"`
	} `json:"comparison"`
	Summary string `json:"summary"`
}

// NewDisplay formats every figure of a report
func NewDisplay(r tco.Report) Display {
	var d Display
	d.OnPrem.InitialCapex = FormatCurrency(r.OnPrem.InitialCapex)
	d.OnPrem.AnnualOpex = FormatCurrency(r.OnPrem.AnnualOpex)
	d.OnPrem.MonthlyAverage = FormatCurrency(r.OnPrem.MonthlyAverage)
	d.OnPrem.TotalTCO = FormatCurrency(r.OnPrem.TotalTCO)
	d.Cloud.MonthlyTotal = FormatCurrency(r.Cloud.MonthlyTotal)
	d.Cloud.AnnualTotal = FormatCurrency(r.Cloud.AnnualTotal)
	d.Cloud.TotalTCO = FormatCurrency(r.Cloud.TotalTCO)
	d.Comparison.Difference = FormatCurrency(r.Comparison.Savings())
	d.Comparison.Percentage = FormatPercent(r.Comparison)
	d.Comparison.Winner = r.Comparison.Winner.Label()
	d.Summary = Summary(r)
	return d
}
