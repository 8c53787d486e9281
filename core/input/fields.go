package input

import (
	"tco-calculator/core/tco"
)

// Side identifies which deployment a field belongs to
type Side string

const (
	SideOnPrem Side = "on_prem"
	SideCloud  Side = "cloud"
)

// Group is the form section a field is shown in
type Group string

const (
	GroupCapex        Group = "Initial Capital Expenses"
	GroupOpex         Group = "Operating Expenses (Annual)"
	GroupCloudMonthly Group = "Monthly Operating Expenses"
)

// TimeframeKey is the form key of the analysis horizon
const TimeframeKey = "timeframe"

// Field describes one raw form input
type Field struct {
	// Key is the form key, e.g. "serverCost"
	Key string `json:"key"`

	// Flag is the CLI flag name, e.g. "server-cost"
	Flag string `json:"flag"`

	// Label is the human-readable label
	Label string `json:"label"`

	Side    Side   `json:"side"`
	Group   Group  `json:"group"`
	Default string `json:"default"`

	setOnPrem func(*tco.OnPremInputs, string)
	setCloud  func(*tco.CloudInputs, string)
}

var fields = []Field{
	{Key: "servers", Flag: "servers", Label: "Number of Servers", Side: SideOnPrem, Group: GroupCapex, Default: "10",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.Servers = ParseCount(raw) }},
	{Key: "serverCost", Flag: "server-cost", Label: "Cost per Server ($)", Side: SideOnPrem, Group: GroupCapex, Default: "5000",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.ServerCost = ParseAmount(raw) }},
	{Key: "storage", Flag: "storage-tb", Label: "Storage (TB)", Side: SideOnPrem, Group: GroupCapex, Default: "50",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.StorageTB = ParseAmount(raw) }},
	{Key: "storageCostPerTB", Flag: "cost-per-tb", Label: "Cost per TB ($)", Side: SideOnPrem, Group: GroupCapex, Default: "500",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.CostPerTB = ParseAmount(raw) }},
	{Key: "network", Flag: "network-equipment", Label: "Network Equipment ($)", Side: SideOnPrem, Group: GroupCapex, Default: "10000",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.NetworkEquipment = ParseAmount(raw) }},
	{Key: "powerCostPerMonth", Flag: "power", Label: "Power Cost ($/month)", Side: SideOnPrem, Group: GroupOpex, Default: "1000",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.PowerMonthly = ParseAmount(raw) }},
	{Key: "coolingCostPerMonth", Flag: "cooling", Label: "Cooling Cost ($/month)", Side: SideOnPrem, Group: GroupOpex, Default: "500",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.CoolingMonthly = ParseAmount(raw) }},
	{Key: "facilitySpaceCost", Flag: "facility", Label: "Facility Space ($/month)", Side: SideOnPrem, Group: GroupOpex, Default: "2000",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.FacilityMonthly = ParseAmount(raw) }},
	{Key: "itStaffSalaries", Flag: "it-staff", Label: "IT Staff Salaries ($/year)", Side: SideOnPrem, Group: GroupOpex, Default: "150000",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.ITStaffAnnual = ParseAmount(raw) }},
	{Key: "maintenancePercent", Flag: "maintenance-percent", Label: "Maintenance (% of CapEx)", Side: SideOnPrem, Group: GroupOpex, Default: "15",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.MaintenancePercent = ParseAmount(raw) }},
	{Key: "softwareLicenses", Flag: "software-licenses", Label: "Software Licenses ($/year)", Side: SideOnPrem, Group: GroupOpex, Default: "25000",
		setOnPrem: func(in *tco.OnPremInputs, raw string) { in.SoftwareLicensesAnnual = ParseAmount(raw) }},

	{Key: "computeMonthly", Flag: "cloud-compute", Label: "Compute Instances ($/month)", Side: SideCloud, Group: GroupCloudMonthly, Default: "8000",
		setCloud: func(in *tco.CloudInputs, raw string) { in.Compute = ParseAmount(raw) }},
	{Key: "storageMonthly", Flag: "cloud-storage", Label: "Storage ($/month)", Side: SideCloud, Group: GroupCloudMonthly, Default: "2000",
		setCloud: func(in *tco.CloudInputs, raw string) { in.Storage = ParseAmount(raw) }},
	{Key: "networkMonthly", Flag: "cloud-network", Label: "Network/VPC ($/month)", Side: SideCloud, Group: GroupCloudMonthly, Default: "1500",
		setCloud: func(in *tco.CloudInputs, raw string) { in.Network = ParseAmount(raw) }},
	{Key: "backupMonthly", Flag: "cloud-backup", Label: "Backup Services ($/month)", Side: SideCloud, Group: GroupCloudMonthly, Default: "500",
		setCloud: func(in *tco.CloudInputs, raw string) { in.Backup = ParseAmount(raw) }},
	{Key: "securityMonthly", Flag: "cloud-security", Label: "Security Services ($/month)", Side: SideCloud, Group: GroupCloudMonthly, Default: "1000",
		setCloud: func(in *tco.CloudInputs, raw string) { in.Security = ParseAmount(raw) }},
	{Key: "supportMonthly", Flag: "cloud-support", Label: "Support Plan ($/month)", Side: SideCloud, Group: GroupCloudMonthly, Default: "2000",
		setCloud: func(in *tco.CloudInputs, raw string) { in.Support = ParseAmount(raw) }},
	{Key: "dataTransferMonthly", Flag: "cloud-data-transfer", Label: "Data Transfer ($/month)", Side: SideCloud, Group: GroupCloudMonthly, Default: "1000",
		setCloud: func(in *tco.CloudInputs, raw string) { in.DataTransfer = ParseAmount(raw) }},
}

var fieldIndex = func() map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Key] = i
	}
	return idx
}()

// Fields returns every input field in form order
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup finds a field by its form key
func Lookup(key string) (Field, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}
