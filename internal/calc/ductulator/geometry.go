package ductulator

import (
	"math"

	"Handbook/internal/calc"
)

type Shape string

const (
	Circular    Shape = "circular"
	Rectangular Shape = "rectangular"
)

// CrossSection describes a duct in millimetres. PrimaryMM is the diameter of
// a circular duct or the width of a rectangular one; SecondaryMM is the
// height and is ignored for circular ducts.
type CrossSection struct {
	Shape       Shape   `json:"shape"`
	PrimaryMM   float64 `json:"primary_mm"`
	SecondaryMM float64 `json:"secondary_mm"`
}

func (cs CrossSection) Validate() error {
	switch cs.Shape {
	case Circular, Rectangular:
	default:
		return calc.Invalid("unknown shape %q", cs.Shape)
	}
	if err := calc.Finite(map[string]float64{"primary_mm": cs.PrimaryMM, "secondary_mm": cs.SecondaryMM}); err != nil {
		return err
	}
	if cs.PrimaryMM < 0 || (cs.Shape == Rectangular && cs.SecondaryMM < 0) {
		return calc.Invalid("dimensions must not be negative")
	}
	return nil
}

// Area returns the flow area in m².
func Area(cs CrossSection) float64 {
	if cs.Shape == Circular {
		d := cs.PrimaryMM / 1000.0
		return math.Pi * d * d / 4.0
	}
	return (cs.PrimaryMM / 1000.0) * (cs.SecondaryMM / 1000.0)
}

// EquivalentDiameter returns the diameter in m used by the friction
// correlation. For rectangular ducts this is the ASHRAE equal-friction
// diameter 1.30·(a·b)^0.625/(a+b)^0.25, and 0 when a+b is 0.
func EquivalentDiameter(cs CrossSection) float64 {
	if cs.Shape == Circular {
		return cs.PrimaryMM / 1000.0
	}
	a := cs.PrimaryMM / 1000.0
	b := cs.SecondaryMM / 1000.0
	if a+b == 0 {
		return 0
	}
	return 1.30 * math.Pow(a*b, 0.625) / math.Pow(a+b, 0.25)
}

// Velocity is the mean velocity in m/s for flowLs litres per second through
// area m², and 0 when there is no area.
func Velocity(flowLs, area float64) float64 {
	if area <= 0 {
		return 0
	}
	return (flowLs / 1000.0) / area
}
