package tco

import "github.com/shopspring/decimal"

// ComputeOnPrem derives the on-premises capex, opex and TCO over the given
// number of years. Maintenance is charged yearly as a share of initial capex.
func ComputeOnPrem(in OnPremInputs, years int) OnPremResult {
	years = normalizeYears(years)
	n := decimal.NewFromInt(int64(years))

	capex := decimal.NewFromInt(int64(in.Servers)).Mul(in.ServerCost).
		Add(in.StorageTB.Mul(in.CostPerTB)).
		Add(in.NetworkEquipment)

	monthly := in.PowerMonthly.Add(in.CoolingMonthly).Add(in.FacilityMonthly)
	maintenance := capex.Mul(in.MaintenancePercent).Div(hundred)

	opex := monthly.Mul(twelve).
		Add(in.ITStaffAnnual).
		Add(maintenance).
		Add(in.SoftwareLicensesAnnual)

	total := capex.Add(opex.Mul(n))

	return OnPremResult{
		InitialCapex:   capex,
		AnnualOpex:     opex,
		TotalTCO:       total,
		MonthlyAverage: total.Div(n.Mul(twelve)),
	}
}
