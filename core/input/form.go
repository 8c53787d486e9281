package input

import (
	"sort"
	"strconv"

	"tco-calculator/core/tco"
	"tco-calculator/internal/errors"
)

// Form holds raw, uncoerced values keyed by field key. It plays the part of
// the original single-screen form: every change is stored as typed text and
// Scenario coerces a fresh immutable snapshot from it.
type Form struct {
	values    map[string]string
	timeframe string
}

// NewForm returns a form seeded with the calculator defaults
func NewForm() *Form {
	f := &Form{
		values:    make(map[string]string, len(fields)),
		timeframe: strconv.Itoa(tco.DefaultTimeframe),
	}
	for _, field := range fields {
		f.values[field.Key] = field.Default
	}
	return f
}

// Set stores a raw value. Only unknown keys fail; bad values are kept as
// typed and read as zero later.
func (f *Form) Set(key, raw string) error {
	if key == TimeframeKey {
		f.timeframe = raw
		return nil
	}
	if _, ok := fieldIndex[key]; !ok {
		return errors.NotFound("field", key)
	}
	f.values[key] = raw
	return nil
}

// SetAll applies every value in raw, stopping at the first unknown key
func (f *Form) SetAll(raw map[string]string) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := f.Set(k, raw[k]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the raw value of a field
func (f *Form) Get(key string) (string, bool) {
	if key == TimeframeKey {
		return f.timeframe, true
	}
	v, ok := f.values[key]
	return v, ok
}

// Values returns a copy of every raw value, timeframe included
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values)+1)
	for k, v := range f.values {
		out[k] = v
	}
	out[TimeframeKey] = f.timeframe
	return out
}

// Scenario coerces the current raw values into an immutable snapshot
func (f *Form) Scenario() tco.Scenario {
	var s tco.Scenario
	for _, field := range fields {
		raw := f.values[field.Key]
		switch field.Side {
		case SideOnPrem:
			field.setOnPrem(&s.OnPrem, raw)
		case SideCloud:
			field.setCloud(&s.Cloud, raw)
		}
	}
	s.Years = ParseTimeframe(f.timeframe)
	return s
}
