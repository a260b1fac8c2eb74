package ductulator

import "Handbook/internal/calc"

// Request is the form as submitted. Absent fields stay nil so the caller
// can tell "not entered yet" from zero.
type Request struct {
	Shape             Shape           `json:"shape"`
	DiameterMM        *float64        `json:"diameter_mm"`
	WidthMM           *float64        `json:"width_mm"`
	HeightMM          *float64        `json:"height_mm"`
	FlowLs            *float64        `json:"flow_ls"`
	LengthM           *float64        `json:"length_m"`
	Roughness         RoughnessPreset `json:"roughness"`
	CustomRoughnessMM *float64        `json:"custom_roughness_mm"`
	Density           *float64        `json:"density"`
	Viscosity         *float64        `json:"viscosity"`
}

// Input converts the form into a complete Input. Density and viscosity
// default to Air and the roughness to galvanised steel; every other field
// the chosen shape needs is required.
func (r Request) Input() (Input, error) {
	var f calc.Fields
	in := Input{
		FlowLs:  f.Get("flow_ls", r.FlowLs),
		LengthM: f.Get("length_m", r.LengthM),
		Fluid: Fluid{
			Density:   f.Or("density", r.Density, Air.Density),
			Viscosity: f.Or("viscosity", r.Viscosity, Air.Viscosity),
		},
		Roughness: Roughness{Preset: r.Roughness},
	}
	if in.Roughness.Preset == "" {
		in.Roughness.Preset = Galvanized
	}
	if in.Roughness.Preset == Custom {
		in.Roughness.CustomMM = f.Get("custom_roughness_mm", r.CustomRoughnessMM)
	}

	switch r.Shape {
	case Circular:
		in.Section = CrossSection{Shape: Circular, PrimaryMM: f.Get("diameter_mm", r.DiameterMM)}
	case Rectangular:
		in.Section = CrossSection{
			Shape:       Rectangular,
			PrimaryMM:   f.Get("width_mm", r.WidthMM),
			SecondaryMM: f.Get("height_mm", r.HeightMM),
		}
	case "":
		return Input{}, calc.Invalid("missing shape")
	default:
		return Input{}, calc.Invalid("unknown shape %q", r.Shape)
	}
	if err := f.Err(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Evaluate converts and calculates in one step.
func Evaluate(r Request) (Result, error) {
	in, err := r.Input()
	if err != nil {
		return Result{}, err
	}
	return Calculate(in)
}
