// Package conversions converts between the units found on HVAC drawings
// and data sheets.
package conversions

import (
	"fmt"
	"sort"

	"Handbook/internal/calc"
)

// Quantity names one family of linear units.
type Quantity string

const (
	Velocity Quantity = "velocity"
	Flow     Quantity = "flow"
	Pressure Quantity = "pressure"
	Power    Quantity = "power"
)

// factors to the base unit of each quantity: m/s, L/s, Pa and W
var toBase = map[Quantity]map[string]float64{
	Velocity: {
		"m/s":     1.0,
		"ft/s":    0.3048,
		"ft/min":  0.3048 / 60,
		"km/hr":   1000.0 / 3600,
		"mile/hr": 1609.344 / 3600,
	},
	Flow: {
		"L/s": 1.0,
		"CFM": 0.47194745,
	},
	Pressure: {
		"Pa":           1.0,
		"kPa":          1000.0,
		"psi":          6894.757293,
		"in H₂O":       249.08891,
		"mm H₂O":       9.80665,
		"in Hg":        3386.389,
		"mm Hg (Torr)": 133.322368,
		"bar":          100000.0,
		"Std. Atmos.":  101325.0,
	},
	Power: {
		"W":             1.0,
		"kW":            1000.0,
		"HP":            745.699872,
		"Btu/hr":        0.29307107,
		"ton refriger.": 3516.852842,
		"MJ/hr":         1e6 / 3600,
	},
}

// Linear converts v between two units of the same quantity.
func Linear(q Quantity, v float64, from, to string) (float64, error) {
	units, ok := toBase[q]
	if !ok {
		return 0, fmt.Errorf("%w: quantity %q", calc.ErrNotFound, q)
	}
	f, ok := units[from]
	if !ok {
		return 0, calc.Invalid("unknown %s unit %q", q, from)
	}
	t, ok := units[to]
	if !ok {
		return 0, calc.Invalid("unknown %s unit %q", q, to)
	}
	return v * f / t, nil
}

const (
	Celsius    = "°C"
	Fahrenheit = "°F"
)

func CToF(c float64) float64 { return c*9/5 + 32 }
func FToC(f float64) float64 { return (f - 32) * 5 / 9 }

func Temperature(v float64, from, to string) (float64, error) {
	switch {
	case from == to && (from == Celsius || from == Fahrenheit):
		return v, nil
	case from == Celsius && to == Fahrenheit:
		return CToF(v), nil
	case from == Fahrenheit && to == Celsius:
		return FToC(v), nil
	}
	return 0, calc.Invalid("unsupported temperature conversion %s → %s", from, to)
}

// Units lists the unit names of every quantity, sorted.
func Units() map[string][]string {
	out := map[string][]string{
		"temperature": {Celsius, Fahrenheit},
		"length":      {Inch, Millimetre},
		"gauge":       GaugeNames(),
	}
	for q, units := range toBase {
		names := make([]string, 0, len(units))
		for n := range units {
			names = append(names, n)
		}
		sort.Strings(names)
		out[string(q)] = names
	}
	return out
}
