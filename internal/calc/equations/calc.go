// Package equations holds the everyday HVAC rules: heat content of air and
// water, airflow, air changes and mixing.
package equations

import "Handbook/internal/calc"

type AirHeat struct {
	LatentW   float64 `json:"latent_w"`
	SensibleW float64 `json:"sensible_w"`
	TotalW    float64 `json:"total_w"`
}

// AirHeatContent: latent 2.9·Q·Δg, sensible 1.213·Q·ΔT (Q in L/s, Δg in g/kg).
func AirHeatContent(flowLs, dGkg, dT float64) AirHeat {
	latent := 2.9 * flowLs * dGkg
	sensible := 1.213 * flowLs * dT
	return AirHeat{LatentW: latent, SensibleW: sensible, TotalW: latent + sensible}
}

// WaterHeatContent returns watts for Q in L/s.
func WaterHeatContent(flowLs, dT float64) float64 {
	return 4.187 * flowLs * dT * 1000
}

// Airflow returns L/s through area (m²) at velocity (m/s).
func Airflow(area, velocity float64) float64 {
	return area * velocity * 1000
}

// AirChanges per hour for Q L/s in a room of volume m³.
func AirChanges(flowLs, volume float64) (float64, error) {
	if volume == 0 {
		return 0, calc.Invalid("room volume must be non-zero")
	}
	return 3.6 * flowLs / volume, nil
}

// Mix returns the temperature of two mixed streams.
func Mix(q1, t1, q2, t2 float64) (float64, error) {
	q3 := q1 + q2
	if q3 == 0 {
		return 0, calc.Invalid("combined flow Q3 is zero")
	}
	return (q1*t1 + q2*t2) / q3, nil
}

var abbreviations = []calc.Symbol{
	{Symbol: "Q", Meaning: "Air Flow", Units: "L/s"},
	{Symbol: "v", Meaning: "Air Velocity", Units: "m/s"},
	{Symbol: "A", Meaning: "Area", Units: "m²"},
	{Symbol: "V", Meaning: "Volume", Units: "m³"},
	{Symbol: "ΔT", Meaning: "Temperature Difference", Units: "°C"},
	{Symbol: "g/kg", Meaning: "Moisture Content", Units: "Refer to Psychrometric Chart"},
	{Symbol: "kJ/kg", Meaning: "Enthalpy", Units: "Refer to Psychrometric Chart"},
}

func Abbreviations() []calc.Symbol {
	return append([]calc.Symbol(nil), abbreviations...)
}
