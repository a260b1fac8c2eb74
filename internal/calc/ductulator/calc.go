// Package ductulator computes velocity and straight-duct friction loss for
// circular and rectangular air ducts.
package ductulator

import (
	"Handbook/internal/calc"
	"Handbook/internal/calc/friction"
)

// Fluid holds the properties used by the friction correlation.
type Fluid struct {
	Density   float64 `json:"density_kg_m3"`
	Viscosity float64 `json:"viscosity_pa_s"`
}

// Air is air at about 20 °C.
var Air = Fluid{Density: 1.2, Viscosity: 1.8e-5}

type Input struct {
	Section   CrossSection `json:"section"`
	FlowLs    float64      `json:"flow_ls"`
	LengthM   float64      `json:"length_m"`
	Roughness Roughness    `json:"roughness"`
	Fluid     Fluid        `json:"fluid"`
}

type Result struct {
	AreaM2              float64         `json:"area_m2"`
	EquivalentDiameterM float64         `json:"equivalent_diameter_m"`
	VelocityMS          float64         `json:"velocity_m_s"`
	ReynoldsNumber      float64         `json:"reynolds_number"`
	FrictionFactor      float64         `json:"friction_factor"`
	PressureGradientPaM float64         `json:"pressure_gradient_pa_per_m"`
	TotalPressureLossPa float64         `json:"total_pressure_loss_pa"`
	VelocityPressurePa  float64         `json:"velocity_pressure_pa"`
	RoughnessM          float64         `json:"roughness_m"`
	Regime              friction.Regime `json:"regime"`
	Notes               string          `json:"notes"`
}

func (in Input) validate() (float64, error) {
	if err := in.Section.Validate(); err != nil {
		return 0, err
	}
	if err := calc.Finite(map[string]float64{
		"flow_ls": in.FlowLs, "length_m": in.LengthM,
		"density": in.Fluid.Density, "viscosity": in.Fluid.Viscosity,
	}); err != nil {
		return 0, err
	}
	if in.FlowLs < 0 {
		return 0, calc.Invalid("flow must not be negative")
	}
	if in.LengthM < 0 {
		return 0, calc.Invalid("length must not be negative")
	}
	if in.Fluid.Density <= 0 || in.Fluid.Viscosity <= 0 {
		return 0, calc.Invalid("density and viscosity must be positive")
	}
	return in.Roughness.Meters()
}

// Calculate runs the straight-duct pipeline:
// geometry → velocity → Reynolds → friction factor → Δp/L → Δp.
// A section with no area or no equivalent diameter yields zero velocity,
// Reynolds number and gradient rather than an error.
func Calculate(in Input) (Result, error) {
	eps, err := in.validate()
	if err != nil {
		return Result{}, err
	}

	area := Area(in.Section)
	d := EquivalentDiameter(in.Section)
	v := Velocity(in.FlowLs, area)
	re := friction.Reynolds(in.Fluid.Density, v, d, in.Fluid.Viscosity)
	f := friction.SwameeJain(re, eps, d)
	perM := friction.Gradient(f, in.Fluid.Density, v, d)

	return Result{
		AreaM2:              area,
		EquivalentDiameterM: d,
		VelocityMS:          v,
		ReynoldsNumber:      re,
		FrictionFactor:      f,
		PressureGradientPaM: perM,
		TotalPressureLossPa: perM * in.LengthM,
		VelocityPressurePa:  friction.VelocityPressure(in.Fluid.Density, v),
		RoughnessM:          eps,
		Regime:              friction.DuctRegime(re, d),
		Notes:               "Straight-duct result only. Add fitting losses separately using K·VP.",
	}, nil
}
