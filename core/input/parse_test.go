package input

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"5000", "5000"},
		{"  42.5 ", "42.5"},
		{"12abc", "12"},
		{"", "0"},
		{"abc", "0"},
		{"-", "0"},
		{".", "0"},
		{".5", "0.5"},
		{"5.", "5"},
		{"-.25", "-0.25"},
		{"+7", "7"},
		{"1e3", "1000"},
		{"1.5E2x", "150"},
		{"2e", "2"},
		{"Infinity", "0"},
		{"$100", "0"},
		{"1,000", "1"},
		{"1e308", "1e308"},
		{"1.7e308", "1.7e308"},
		{"0.001e310", "1e307"},
		{"5e-324", "5e-324"},
		{"1e309", "0"},
		{"1.8e308", "0"},
		{"-1e400", "0"},
		{"1e300000000", "0"},
		{"1e1500000000", "0"},
		{"1e99999999999999999999", "0"},
		{"1e-325", "0"},
		{"1e-99999999999999999999", "0"},
		{"0e99999999999999999999", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := map[string]int{
		"10":                   10,
		"10.9":                 10,
		"-3.7":                 -3,
		"":                     0,
		"lots":                 0,
		"4 hosts":              4,
		"2147483647":           MaxCount,
		"1e19":                 MaxCount,
		"9223372036854775808":  MaxCount,
		"-1e19":                -MaxCount,
		"-9223372036854775809": -MaxCount,
		"1e400":                0,
	}
	for raw, want := range tests {
		if got := ParseCount(raw); got != want {
			t.Errorf("ParseCount(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestParseTimeframe(t *testing.T) {
	tests := map[string]int{
		"5":                     5,
		"1":                     1,
		"10":                    10,
		"0":                     1,
		"-4":                    1,
		"11":                    10,
		"7.9":                   7,
		"":                      1,
		"soon":                  1,
		"99999999999999999999":  10,
		"-99999999999999999999": 1,
		"+3":                    3,
	}
	for raw, want := range tests {
		if got := ParseTimeframe(raw); got != want {
			t.Errorf("ParseTimeframe(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestClampTimeframe(t *testing.T) {
	tests := []struct{ in, want int }{
		{-1, 1}, {0, 1}, {1, 1}, {6, 6}, {10, 10}, {25, 10},
	}
	for _, tt := range tests {
		if got := ClampTimeframe(tt.in); got != tt.want {
			t.Errorf("ClampTimeframe(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
