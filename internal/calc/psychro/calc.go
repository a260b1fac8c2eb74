// Package psychro computes the state of moist air and the curves of a
// psychrometric chart.
package psychro

import (
	"fmt"

	"Handbook/internal/calc"
)

// State is moist air at one point on the chart.
type State struct {
	DryBulbC       float64  `json:"dry_bulb_c"`
	RelHumidity    float64  `json:"relative_humidity_pct"`
	PressurePa     float64  `json:"pressure_pa"`
	HumidityRatio  float64  `json:"humidity_ratio_g_kg"`
	Enthalpy       float64  `json:"enthalpy_kj_kg"`
	WetBulbC       float64  `json:"wet_bulb_c"`
	SpecificVolume float64  `json:"specific_volume_m3_kg"`
	DewPointC      *float64 `json:"dew_point_c"`
	VapourPressure float64  `json:"vapour_pressure_pa"`
}

// PropertySource computes humid-air properties. rh is a fraction 0..1.
type PropertySource interface {
	HumidityRatio(dbC, rh, pressurePa float64) (float64, error)
	State(dbC, rh, pressurePa float64) (State, error)
}

// Calculator evaluates states and charts against a property source. The
// zero value uses ASHRAE.
type Calculator struct {
	Air PropertySource
}

func (k Calculator) source() PropertySource {
	if k.Air == nil {
		return ASHRAE{}
	}
	return k.Air
}

const (
	MinDryBulb = -10.0
	MaxDryBulb = 50.0
)

type StateRequest struct {
	DryBulbC    *float64 `json:"dry_bulb_c"`
	RelHumidity *float64 `json:"relative_humidity_pct"`
	PressurePa  *float64 `json:"pressure_pa"`
}

type StateResult struct {
	State
	Clamped bool `json:"clamped"`
}

// EvalState clamps the dry bulb to the chart range and the humidity to
// 0..100 % before evaluating; Clamped reports whether that happened.
func EvalState(req StateRequest) (StateResult, error) { return Calculator{}.EvalState(req) }

func (k Calculator) EvalState(req StateRequest) (StateResult, error) {
	var f calc.Fields
	db := f.Or("dry_bulb_c", req.DryBulbC, 25)
	rh := f.Or("relative_humidity_pct", req.RelHumidity, 50)
	p := f.Or("pressure_pa", req.PressurePa, StandardPressure)
	if err := f.Err(); err != nil {
		return StateResult{}, err
	}
	cdb, crh := clamp(db, MinDryBulb, MaxDryBulb), clamp(rh, 0, 100)
	s, err := k.source().State(cdb, crh/100, p)
	if err != nil {
		return StateResult{}, err
	}
	return StateResult{State: s, Clamped: cdb != db || crh != rh}, nil
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

type Curve struct {
	RelHumidity   float64   `json:"relative_humidity_pct"`
	Label         string    `json:"label"`
	HumidityRatio []float64 `json:"humidity_ratio_g_kg"`
}

type Chart struct {
	PressurePa float64   `json:"pressure_pa"`
	DryBulbC   []float64 `json:"dry_bulb_c"`
	Curves     []Curve   `json:"curves"`
}

const DefaultChartPoints = 400

// BuildChart returns constant-RH curves for 10..90 % and the saturation
// line over the chart's dry-bulb range.
func BuildChart(points int, p float64) (Chart, error) { return Calculator{}.BuildChart(points, p) }

func (k Calculator) BuildChart(points int, p float64) (Chart, error) {
	src := k.source()
	if points == 0 {
		points = DefaultChartPoints
	}
	if points < 2 || points > 5000 {
		return Chart{}, calc.Invalid("points must be between 2 and 5000")
	}
	c := Chart{PressurePa: p, DryBulbC: make([]float64, points)}
	for i := range c.DryBulbC {
		c.DryBulbC[i] = MinDryBulb + (MaxDryBulb-MinDryBulb)*float64(i)/float64(points-1)
	}
	for rh := 10; rh <= 100; rh += 10 {
		label := fmt.Sprintf("RH %d%%", rh)
		if rh == 100 {
			label = "Saturation (100% RH)"
		}
		curve := Curve{RelHumidity: float64(rh), Label: label, HumidityRatio: make([]float64, points)}
		for i, t := range c.DryBulbC {
			w, err := src.HumidityRatio(t, float64(rh)/100, p)
			if err != nil {
				return Chart{}, err
			}
			curve.HumidityRatio[i] = w * 1000
		}
		c.Curves = append(c.Curves, curve)
	}
	return c, nil
}
