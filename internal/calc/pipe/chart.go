// Package pipe draws the water pipe friction chart: pressure gradient
// against flow for the common nominal sizes.
package pipe

import (
	"math"

	"Handbook/internal/calc"
	"Handbook/internal/calc/friction"
)

const (
	DefaultTemperatureC = 10.0
	DefaultMaterial     = StandardWeight
	DefaultPoints       = 220
	maxPoints           = 2000

	// flow axis, log10(L/s)
	flowLogMin = -1.3
	flowLogMax = 2.0
)

type ChartInput struct {
	Sizes        []string `json:"sizes"`
	TemperatureC *float64 `json:"temperature_c"`
	Material     Material `json:"material"`
	RoughnessMM  *float64 `json:"roughness_mm"`
	Points       int      `json:"points"`
	FlowLs       *float64 `json:"flow_ls"`
	GradientPaM  *float64 `json:"gradient_pa_m"`
}

type Series struct {
	Size        Size      `json:"size"`
	FlowLs      []float64 `json:"flow_ls"`
	GradientPaM []float64 `json:"gradient_pa_m"`
}

type PointRow struct {
	Size        string  `json:"size"`
	InternalMM  float64 `json:"internal_diameter_mm"`
	VelocityMS  float64 `json:"velocity_m_s"`
	GradientPaM float64 `json:"gradient_pa_m"`
	KPaPer100M  float64 `json:"kpa_per_100m"`
}

type StatePoint struct {
	FlowLs      float64    `json:"flow_ls"`
	GradientPaM float64    `json:"gradient_pa_m,omitempty"`
	Rows        []PointRow `json:"rows"`
}

type ChartResult struct {
	Water       Water       `json:"water"`
	Material    Material    `json:"material"`
	RoughnessMM float64     `json:"roughness_mm"`
	Series      []Series    `json:"series"`
	Point       *StatePoint `json:"point,omitempty"`
}

// Calculator evaluates the chart against a water property source. The zero
// value uses Correlations.
type Calculator struct {
	Water PropertySource
}

func (k Calculator) source() PropertySource {
	if k.Water == nil {
		return Correlations{}
	}
	return k.Water
}

type conditions struct {
	water    Water
	material Material
	epsMM    float64
	sizes    []Size
}

func resolve(src PropertySource, in ChartInput) (conditions, error) {
	var c conditions
	t := DefaultTemperatureC
	if in.TemperatureC != nil {
		t = *in.TemperatureC
	}
	w, err := src.Water(t)
	if err != nil {
		return c, err
	}
	c.water = w

	switch {
	case in.RoughnessMM != nil:
		c.epsMM = *in.RoughnessMM
		if math.IsNaN(c.epsMM) || math.IsInf(c.epsMM, 0) || c.epsMM < 0 {
			return c, calc.Invalid("roughness must be a non-negative number")
		}
		c.material = PresetFor(c.epsMM)
	case in.Material == CustomMaterial:
		return c, calc.Invalid("missing roughness_mm for custom material")
	case in.Material == "":
		c.material = DefaultMaterial
		c.epsMM, _ = DefaultMaterial.Roughness()
	default:
		c.material = in.Material
		if c.epsMM, err = in.Material.Roughness(); err != nil {
			return c, err
		}
	}

	c.sizes, err = lookupSizes(in.Sizes)
	return c, err
}

// Gradient returns the velocity (m/s) and pressure gradient (Pa/m) for flowLs
// through a pipe of internal diameter d (m).
func Gradient(flowLs, d float64, w Water, epsM float64) (v, dpPerM float64) {
	area := math.Pi * d * d / 4.0
	if area > 0 {
		v = flowLs / 1000.0 / area
	}
	re := w.Density * v * d / w.Viscosity
	f := friction.Haaland(re, epsM, d)
	return v, friction.Gradient(f, w.Density, v, d)
}

// Chart builds one log-spaced curve per pipe size and, when a positive flow
// is given, the state-point table.
func Chart(in ChartInput) (ChartResult, error) { return Calculator{}.Chart(in) }

// Point evaluates a single flow against every selected size.
func Point(in ChartInput) (StatePoint, error) { return Calculator{}.Point(in) }

func (k Calculator) Chart(in ChartInput) (ChartResult, error) {
	c, err := resolve(k.source(), in)
	if err != nil {
		return ChartResult{}, err
	}
	n := in.Points
	if n == 0 {
		n = DefaultPoints
	}
	if n < 2 || n > maxPoints {
		return ChartResult{}, calc.Invalid("points must be between 2 and %d", maxPoints)
	}

	flows := make([]float64, n)
	for i := range flows {
		flows[i] = math.Pow(10, flowLogMin+(flowLogMax-flowLogMin)*float64(i)/float64(n-1))
	}

	res := ChartResult{Water: c.water, Material: c.material, RoughnessMM: c.epsMM}
	for _, s := range c.sizes {
		series := Series{Size: s, FlowLs: flows, GradientPaM: make([]float64, n)}
		for i, q := range flows {
			_, series.GradientPaM[i] = Gradient(q, s.InternalDia, c.water, c.epsMM/1000)
		}
		res.Series = append(res.Series, series)
	}

	if in.FlowLs != nil && *in.FlowLs > 0 {
		p := statePoint(*in.FlowLs, c)
		if in.GradientPaM != nil && *in.GradientPaM > 0 {
			p.GradientPaM = *in.GradientPaM
		}
		res.Point = &p
	}
	return res, nil
}

func (k Calculator) Point(in ChartInput) (StatePoint, error) {
	var f calc.Fields
	q := f.Get("flow_ls", in.FlowLs)
	if err := f.Err(); err != nil {
		return StatePoint{}, err
	}
	if q <= 0 {
		return StatePoint{}, calc.Invalid("flow must be positive")
	}
	c, err := resolve(k.source(), in)
	if err != nil {
		return StatePoint{}, err
	}
	return statePoint(q, c), nil
}

func statePoint(q float64, c conditions) StatePoint {
	p := StatePoint{FlowLs: q}
	for _, s := range c.sizes {
		v, dp := Gradient(q, s.InternalDia, c.water, c.epsMM/1000)
		p.Rows = append(p.Rows, PointRow{
			Size:        s.Name,
			InternalMM:  s.InternalDia * 1000,
			VelocityMS:  v,
			GradientPaM: dp,
			KPaPer100M:  dp * 100 / 1000,
		})
	}
	return p
}
