// Package tco provides the comparative total cost of ownership engine.
// Every function in this package is pure: results are derived from the
// inputs passed in and nothing is cached between calls.
package tco

import "github.com/shopspring/decimal"

// Timeframe bounds, in years
const (
	MinTimeframe     = 1
	MaxTimeframe     = 10
	DefaultTimeframe = 5

	monthsPerYear = 12
)

var (
	twelve  = decimal.NewFromInt(monthsPerYear)
	hundred = decimal.NewFromInt(100)
)

// OnPremInputs contains the capital and operating inputs of an on-premises deployment
type OnPremInputs struct {
	// Servers is the number of physical servers
	Servers int `json:"servers"`

	// ServerCost is the purchase price per server
	ServerCost decimal.Decimal `json:"server_cost"`

	// StorageTB is the provisioned storage capacity in TB
	StorageTB decimal.Decimal `json:"storage_tb"`

	// CostPerTB is the purchase price per TB of storage
	CostPerTB decimal.Decimal `json:"cost_per_tb"`

	// NetworkEquipment is the one-time network equipment spend
	NetworkEquipment decimal.Decimal `json:"network_equipment"`

	// PowerMonthly is the monthly power bill
	PowerMonthly decimal.Decimal `json:"power_monthly"`

	// CoolingMonthly is the monthly cooling bill
	CoolingMonthly decimal.Decimal `json:"cooling_monthly"`

	// FacilityMonthly is the monthly facility space cost
	FacilityMonthly decimal.Decimal `json:"facility_monthly"`

	// ITStaffAnnual is the yearly IT staff salary cost
	ITStaffAnnual decimal.Decimal `json:"it_staff_annual"`

	// MaintenancePercent is the yearly maintenance cost as a percentage of capex
	MaintenancePercent decimal.Decimal `json:"maintenance_percent"`

	// SoftwareLicensesAnnual is the yearly software license cost
	SoftwareLicensesAnnual decimal.Decimal `json:"software_licenses_annual"`
}

// CloudInputs contains the monthly recurring costs of a cloud deployment
type CloudInputs struct {
	Compute      decimal.Decimal `json:"compute"`
	Storage      decimal.Decimal `json:"storage"`
	Network      decimal.Decimal `json:"network"`
	Backup       decimal.Decimal `json:"backup"`
	Security     decimal.Decimal `json:"security"`
	Support      decimal.Decimal `json:"support"`
	DataTransfer decimal.Decimal `json:"data_transfer"`
}

// OnPremResult is the derived on-premises cost breakdown
type OnPremResult struct {
	InitialCapex   decimal.Decimal `json:"initial_capex"`
	AnnualOpex     decimal.Decimal `json:"annual_opex"`
	TotalTCO       decimal.Decimal `json:"total_tco"`
	MonthlyAverage decimal.Decimal `json:"monthly_average"`
}

// CloudResult is the derived cloud cost breakdown
type CloudResult struct {
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
	AnnualTotal  decimal.Decimal `json:"annual_total"`
	TotalTCO     decimal.Decimal `json:"total_tco"`
}

// Winner names the cheaper deployment
type Winner string

const (
	WinnerCloud  Winner = "Cloud"
	WinnerOnPrem Winner = "OnPrem"
)

// String returns the string representation
func (w Winner) String() string {
	return string(w)
}

// Label returns the display label used by the original form
func (w Winner) Label() string {
	if w == WinnerCloud {
		return "Cloud"
	}
	return "On-Premises"
}

// ComparisonResult compares the two totals
type ComparisonResult struct {
	// Difference is onPremTotal - cloudTotal; positive means cloud is cheaper
	Difference decimal.Decimal `json:"difference"`

	// Percentage is Difference as a share of the on-prem total, one decimal place
	Percentage decimal.Decimal `json:"percentage"`

	// PercentageDefined is false when the on-prem total is zero
	PercentageDefined bool `json:"percentage_defined"`

	// Winner is the cheaper deployment; ties go to on-prem
	Winner Winner `json:"winner"`
}

// Savings returns the unsigned cost difference
func (c ComparisonResult) Savings() decimal.Decimal {
	return c.Difference.Abs()
}

// AbsPercentage returns the unsigned percentage for display
func (c ComparisonResult) AbsPercentage() decimal.Decimal {
	return c.Percentage.Abs()
}

// Scenario is one immutable input snapshot
type Scenario struct {
	OnPrem OnPremInputs `json:"on_prem"`
	Cloud  CloudInputs  `json:"cloud"`
	Years  int          `json:"timeframe_years"`
}

// Report is the full evaluation of a scenario
type Report struct {
	Years      int              `json:"timeframe_years"`
	OnPrem     OnPremResult     `json:"on_prem"`
	Cloud      CloudResult      `json:"cloud"`
	Comparison ComparisonResult `json:"comparison"`
}

// normalizeYears keeps the monthly average well defined
func normalizeYears(years int) int {
	if years < MinTimeframe {
		return MinTimeframe
	}
	return years
}
