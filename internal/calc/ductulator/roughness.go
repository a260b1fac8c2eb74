package ductulator

import (
	"math"

	"Handbook/internal/calc"
)

// RoughnessPreset selects the absolute wall roughness of a duct.
type RoughnessPreset string

const (
	Galvanized RoughnessPreset = "galvanized"
	Spiral     RoughnessPreset = "spiral"
	Flexible   RoughnessPreset = "flexible"
	Custom     RoughnessPreset = "custom"
)

var presetMeters = map[RoughnessPreset]float64{
	Galvanized: 0.00015,
	Spiral:     0.00009,
	Flexible:   0.00100,
}

var presetLabels = map[RoughnessPreset]string{
	Galvanized: "Galvanized steel (0.15 mm)",
	Spiral:     "Spiral steel (0.09 mm)",
	Flexible:   "Flexible duct (~1.0 mm)",
	Custom:     "Custom",
}

// Roughness is a preset, or Custom with CustomMM in millimetres.
type Roughness struct {
	Preset   RoughnessPreset `json:"preset"`
	CustomMM float64         `json:"custom_mm,omitempty"`
}

// Meters returns the absolute roughness in metres.
func (r Roughness) Meters() (float64, error) {
	if r.Preset == Custom {
		if math.IsNaN(r.CustomMM) || math.IsInf(r.CustomMM, 0) || r.CustomMM < 0 {
			return 0, calc.Invalid("custom roughness must be a non-negative number")
		}
		return r.CustomMM / 1000.0, nil
	}
	eps, ok := presetMeters[r.Preset]
	if !ok {
		return 0, calc.Invalid("unknown roughness preset %q", r.Preset)
	}
	return eps, nil
}

func (r Roughness) Label() string {
	if l, ok := presetLabels[r.Preset]; ok {
		return l
	}
	return string(r.Preset)
}

// Presets lists the selectable roughness values in display order.
func Presets() []PresetInfo {
	out := make([]PresetInfo, 0, 4)
	for _, p := range []RoughnessPreset{Galvanized, Spiral, Flexible} {
		out = append(out, PresetInfo{Preset: p, Label: presetLabels[p], MM: presetMeters[p] * 1000})
	}
	return append(out, PresetInfo{Preset: Custom, Label: presetLabels[Custom]})
}

type PresetInfo struct {
	Preset RoughnessPreset `json:"preset"`
	Label  string          `json:"label"`
	MM     float64         `json:"mm,omitempty"`
}
