// Package input turns raw form values into immutable cost model inputs.
//
// Coercion never fails: anything that does not start with a number is read
// as zero, matching the behavior of the original calculator form.
package input

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tco-calculator/core/tco"
)

// Amounts follow the float64 range of the original form: anything whose
// magnitude overflows it reads as zero, like a non-finite value, and
// anything below the smallest subnormal underflows to zero.
const (
	maxExponent = 308
	minExponent = -324

	// MaxCount bounds ParseCount in both directions
	MaxCount = math.MaxInt32
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)

	maxAmount = decimal.NewFromFloat(math.MaxFloat64)
)

// ParseAmount reads the leading decimal number of raw. Empty or non-numeric
// input yields zero; trailing garbage is ignored ("12abc" is 12). Numbers
// outside the float64 range also yield zero.
func ParseAmount(raw string) decimal.Decimal {
	m := floatPrefix.FindString(strings.TrimSpace(raw))
	if m == "" {
		return decimal.Zero
	}
	m = normalizeNumber(m)
	if !inRange(m) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil || d.Abs().GreaterThan(maxAmount) {
		return decimal.Zero
	}
	return d
}

// inRange reports whether the normalized number m has a decimal magnitude
// within [minExponent, maxExponent]. Zero is in range.
func inRange(m string) bool {
	m = strings.TrimPrefix(m, "-")

	mantissa, exp := m, int64(0)
	if i := strings.IndexAny(m, "eE"); i >= 0 {
		mantissa = m[:i]
		e, err := strconv.ParseInt(m[i+1:], 10, 64)
		if err != nil {
			// the exponent alone overflows; only a zero mantissa survives
			return strings.Trim(mantissa, "0.") == ""
		}
		exp = e
	}

	intDigits := len(mantissa)
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intDigits = i
	}
	digits := strings.Replace(mantissa, ".", "", 1)
	lead := strings.IndexFunc(digits, func(r rune) bool { return r != '0' })
	if lead < 0 {
		return true
	}

	magnitude := exp + int64(intDigits-1-lead)
	return magnitude >= minExponent && magnitude <= maxExponent
}

// ParseCount reads raw as a decimal, truncates it toward zero and saturates
// it at ±MaxCount
func ParseCount(raw string) int {
	d := ParseAmount(raw).Truncate(0)
	switch {
	case d.GreaterThan(decimal.NewFromInt(MaxCount)):
		return MaxCount
	case d.LessThan(decimal.NewFromInt(-MaxCount)):
		return -MaxCount
	}
	return int(d.IntPart())
}

// ParseTimeframe reads the leading integer of raw and clamps it to the
// supported range. Unparseable input clamps up to the minimum.
func ParseTimeframe(raw string) int {
	m := intPrefix.FindString(strings.TrimSpace(raw))
	if m == "" {
		return tco.MinTimeframe
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		// out of int64 range: saturate by sign
		n = math.MaxInt64
		if strings.HasPrefix(m, "-") {
			n = math.MinInt64
		}
	}
	if n > MaxCount {
		n = MaxCount
	} else if n < -MaxCount {
		n = -MaxCount
	}
	return ClampTimeframe(int(n))
}

// ClampTimeframe limits years to [tco.MinTimeframe, tco.MaxTimeframe]
func ClampTimeframe(years int) int {
	switch {
	case years < tco.MinTimeframe:
		return tco.MinTimeframe
	case years > tco.MaxTimeframe:
		return tco.MaxTimeframe
	default:
		return years
	}
}

// normalizeNumber rewrites the loose forms parseFloat accepts ("+5", ".5",
// "5.", "5.e3") into ones decimal.NewFromString is guaranteed to take.
func normalizeNumber(m string) string {
	sign := ""
	switch {
	case strings.HasPrefix(m, "-"):
		sign, m = "-", m[1:]
	case strings.HasPrefix(m, "+"):
		m = m[1:]
	}

	mantissa, exp := m, ""
	if i := strings.IndexAny(m, "eE"); i >= 0 {
		mantissa, exp = m[:i], m[i:]
	}
	mantissa = strings.TrimSuffix(mantissa, ".")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	return sign + mantissa + exp
}
