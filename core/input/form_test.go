package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"tco-calculator/core/output"
	"tco-calculator/core/tco"
	"tco-calculator/internal/errors"
)

func TestNewFormMatchesDefaultScenario(t *testing.T) {
	report := tco.Evaluate(NewForm().Scenario())

	if report.Years != tco.DefaultTimeframe {
		t.Errorf("expected default timeframe %d, got %d", tco.DefaultTimeframe, report.Years)
	}
	if !report.OnPrem.TotalTCO.Equal(decimal.NewFromInt(1233750)) {
		t.Errorf("expected on-prem total 1233750, got %s", report.OnPrem.TotalTCO)
	}
	if !report.Cloud.TotalTCO.Equal(decimal.NewFromInt(960000)) {
		t.Errorf("expected cloud total 960000, got %s", report.Cloud.TotalTCO)
	}
}

func TestFormCoercesMalformedValues(t *testing.T) {
	form := NewForm()
	if err := form.Set("serverCost", "not a number"); err != nil {
		t.Fatalf("Set returned error for malformed value: %v", err)
	}
	if err := form.Set("computeMonthly", ""); err != nil {
		t.Fatalf("Set returned error for empty value: %v", err)
	}
	if err := form.Set(TimeframeKey, "42"); err != nil {
		t.Fatalf("Set returned error for timeframe: %v", err)
	}

	s := form.Scenario()
	if !s.OnPrem.ServerCost.IsZero() {
		t.Errorf("expected malformed server cost to coerce to 0, got %s", s.OnPrem.ServerCost)
	}
	if !s.Cloud.Compute.IsZero() {
		t.Errorf("expected empty compute to coerce to 0, got %s", s.Cloud.Compute)
	}
	if s.Years != tco.MaxTimeframe {
		t.Errorf("expected timeframe clamped to %d, got %d", tco.MaxTimeframe, s.Years)
	}

	raw, _ := form.Get("serverCost")
	if raw != "not a number" {
		t.Errorf("expected raw text to be kept, got %q", raw)
	}
}

func TestFormExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		check  func(t *testing.T, s tco.Scenario)
	}{
		{
			name:   "exponent overflowing int32",
			values: map[string]string{"storage": "1e1500000000", "storageCostPerTB": "1e1500000000"},
			check: func(t *testing.T, s tco.Scenario) {
				if !s.OnPrem.StorageTB.IsZero() || !s.OnPrem.CostPerTB.IsZero() {
					t.Errorf("expected overflowing storage to read as 0, got %s x %s", s.OnPrem.StorageTB, s.OnPrem.CostPerTB)
				}
			},
		},
		{
			name:   "exponent past float64",
			values: map[string]string{"serverCost": "1e300000000"},
			check: func(t *testing.T, s tco.Scenario) {
				if !s.OnPrem.ServerCost.IsZero() {
					t.Errorf("expected 0 server cost, got %s", s.OnPrem.ServerCost)
				}
			},
		},
		{
			name: "largest finite amounts",
			values: map[string]string{
				"serverCost": "1e308", "storage": "1e308", "storageCostPerTB": "1e308",
				"maintenancePercent": "1e308", "computeMonthly": "1e308",
			},
			check: func(t *testing.T, s tco.Scenario) {
				if !s.OnPrem.ServerCost.Equal(decimal.RequireFromString("1e308")) {
					t.Errorf("expected 1e308 server cost, got %s", s.OnPrem.ServerCost)
				}
			},
		},
		{
			name:   "server count past int64",
			values: map[string]string{"servers": "1e19"},
			check: func(t *testing.T, s tco.Scenario) {
				if s.OnPrem.Servers != MaxCount {
					t.Errorf("expected %d servers, got %d", MaxCount, s.OnPrem.Servers)
				}
			},
		},
		{
			name:   "subnormal amounts",
			values: map[string]string{"serverCost": "5e-324", "powerCostPerMonth": "1e-400"},
			check: func(t *testing.T, s tco.Scenario) {
				if !s.OnPrem.PowerMonthly.IsZero() {
					t.Errorf("expected underflow to 0, got %s", s.OnPrem.PowerMonthly)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewForm()
			if err := form.SetAll(tt.values); err != nil {
				t.Fatalf("SetAll: %v", err)
			}
			s := form.Scenario()
			tt.check(t, s)

			report := tco.Evaluate(s)
			if report.OnPrem.TotalTCO.IsNegative() || report.Cloud.TotalTCO.IsNegative() {
				t.Errorf("non-negative inputs gave negative totals: %s, %s", report.OnPrem.TotalTCO, report.Cloud.TotalTCO)
			}

			display := output.NewDisplay(report)
			for _, v := range []string{display.OnPrem.TotalTCO, display.Cloud.TotalTCO, display.OnPrem.InitialCapex} {
				if !strings.HasPrefix(v, "$") {
					t.Errorf("expected a positive dollar amount, got %q", v)
				}
			}
			if display.Summary == "" {
				t.Error("expected a summary")
			}
		})
	}
}

func TestFormRejectsUnknownField(t *testing.T) {
	err := NewForm().Set("gpuCost", "100")
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestFormScenarioIsSnapshot(t *testing.T) {
	form := NewForm()
	before := form.Scenario()

	_ = form.Set("servers", "20")
	after := form.Scenario()

	if before.OnPrem.Servers != 10 {
		t.Errorf("earlier snapshot changed: servers = %d", before.OnPrem.Servers)
	}
	if after.OnPrem.Servers != 20 {
		t.Errorf("expected 20 servers, got %d", after.OnPrem.Servers)
	}
}

func TestFieldsRegistry(t *testing.T) {
	all := Fields()
	if len(all) != 18 {
		t.Fatalf("expected 18 fields, got %d", len(all))
	}

	flags := make(map[string]bool)
	for _, f := range all {
		if flags[f.Flag] {
			t.Errorf("duplicate flag %q", f.Flag)
		}
		flags[f.Flag] = true

		if got, ok := Lookup(f.Key); !ok || got.Label != f.Label {
			t.Errorf("Lookup(%q) did not return the registered field", f.Key)
		}
	}

	if _, ok := Lookup("timeframe"); ok {
		t.Error("timeframe is not a cost field")
	}
}

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json flat",
			file: "scenario.json",
			content: `{"timeframe": 3, "servers": 4, "serverCost": "2500",
				"computeMonthly": 1200.5, "supportMonthly": null}`,
		},
		{
			name: "json sections",
			file: "scenario.json",
			content: `{"timeframe": "3", "on_prem": {"servers": 4, "serverCost": 2500},
				"cloud": {"computeMonthly": "1200.5", "supportMonthly": "n/a"}}`,
		},
		{
			name: "yaml",
			file: "scenario.yaml",
			content: `
timeframe: 3
onPrem:
  servers: 4
  serverCost: 2500
cloud:
  computeMonthly: 1200.5
  supportMonthly: ""
`,
		},
		{
			name: "hcl",
			file: "scenario.hcl",
			content: `
timeframe = 3

on_prem {
  servers    = 4
  serverCost = 2500
}

cloud {
  computeMonthly = 1200.5
  supportMonthly = "none"
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := LoadFile(writeScenario(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadFile failed: %v", err)
			}
			s := form.Scenario()

			if s.Years != 3 {
				t.Errorf("expected 3 years, got %d", s.Years)
			}
			if s.OnPrem.Servers != 4 {
				t.Errorf("expected 4 servers, got %d", s.OnPrem.Servers)
			}
			if !s.OnPrem.ServerCost.Equal(decimal.NewFromInt(2500)) {
				t.Errorf("expected server cost 2500, got %s", s.OnPrem.ServerCost)
			}
			if !s.Cloud.Compute.Equal(decimal.RequireFromString("1200.5")) {
				t.Errorf("expected compute 1200.5, got %s", s.Cloud.Compute)
			}
			if !s.Cloud.Support.IsZero() {
				t.Errorf("expected support to coerce to 0, got %s", s.Cloud.Support)
			}
			// untouched fields keep their defaults
			if !s.Cloud.Storage.Equal(decimal.NewFromInt(2000)) {
				t.Errorf("expected default cloud storage 2000, got %s", s.Cloud.Storage)
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errType errors.Type
	}{
		{"unknown extension", "scenario.toml", "servers = 1", errors.TypeNotSupported},
		{"bad json", "scenario.json", "{", errors.TypeParsing},
		{"bad yaml", "scenario.yml", "servers: [1", errors.TypeParsing},
		{"unknown key", "scenario.json", `{"gpuCost": 1}`, errors.TypeNotFound},
		{"wrong section", "scenario.json", `{"cloud": {"servers": 1}}`, errors.TypeInput},
		{"section not a map", "scenario.yaml", "cloud: 5", errors.TypeInput},
		{"bad hcl", "scenario.hcl", "on_prem {", errors.TypeParsing},
		{"unknown hcl attribute", "scenario.hcl", "gpuCost = 1", errors.TypeInput},
		{"wrong hcl section", "scenario.hcl", "on_prem {\n  computeMonthly = 1\n}\n", errors.TypeInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeScenario(t, tt.file, tt.content))
			if !errors.IsType(err, tt.errType) {
				t.Errorf("expected %s, got %v", tt.errType, err)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR for missing file, got %v", err)
	}
}
