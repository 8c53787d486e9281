package tco

// Evaluate runs both cost models and the comparison for one snapshot
func Evaluate(s Scenario) Report {
	years := normalizeYears(s.Years)
	onPrem := ComputeOnPrem(s.OnPrem, years)
	cloud := ComputeCloud(s.Cloud, years)

	return Report{
		Years:      years,
		OnPrem:     onPrem,
		Cloud:      cloud,
		Comparison: Compare(onPrem.TotalTCO, cloud.TotalTCO),
	}
}
