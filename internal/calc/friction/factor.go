// Package friction holds the Darcy friction factor correlations shared by the
// duct and pipe calculators.
package friction

import "math"

const (
	// LaminarLimitDuct is the Reynolds number below which the duct engine
	// uses the laminar solution. At exactly this value the turbulent
	// branch applies, so f jumps from 0.032 to the Swamee-Jain value.
	LaminarLimitDuct = 2000.0
	// LaminarLimitPipe is the transition used by the water pipe chart.
	LaminarLimitPipe = 2300.0
)

// Regime names the branch a friction factor was taken from.
type Regime string

const (
	RegimeNone      Regime = "none"
	RegimeLaminar   Regime = "laminar"
	RegimeTurbulent Regime = "turbulent"
)

// DuctRegime reports which branch SwameeJain uses for re and d.
func DuctRegime(re, d float64) Regime {
	switch {
	case re <= 0 || d <= 0:
		return RegimeNone
	case re < LaminarLimitDuct:
		return RegimeLaminar
	default:
		return RegimeTurbulent
	}
}

// SwameeJain returns the Darcy friction factor for Reynolds number re,
// absolute roughness eps (m) and diameter d (m).
//
//	f = 64/Re                                  Re < 2000
//	f = 0.25 / log10(eps/(3.7 d) + 5.74/Re^0.9)^2   otherwise
//
// It returns 0 when there is no flow (re <= 0) or no duct (d <= 0).
func SwameeJain(re, eps, d float64) float64 {
	switch DuctRegime(re, d) {
	case RegimeNone:
		return 0
	case RegimeLaminar:
		return 64.0 / re
	}
	term := eps/(3.7*d) + 5.74/math.Pow(re, 0.9)
	l := math.Log10(term)
	return 0.25 / (l * l)
}

// Haaland returns the Darcy friction factor used by the pipe chart:
// laminar below 2300, otherwise
//
//	f = (-1.8 log10((eps/(3.7 d))^1.11 + 6.9/Re))^-2
//
// Re is floored at 1e-9 (laminar) and 1 (turbulent) so a zero flow never
// divides by zero; callers multiply by V² which is then zero anyway.
func Haaland(re, eps, d float64) float64 {
	if re < LaminarLimitPipe {
		return 64.0 / math.Max(re, 1e-9)
	}
	term := math.Pow(eps/(3.7*d), 1.11) + 6.9/math.Max(re, 1.0)
	l := -1.8 * math.Log10(term)
	return 1.0 / (l * l)
}

// Gradient is the Darcy-Weisbach pressure gradient f·ρV²/(2D) in Pa/m,
// defined as 0 when d is 0.
func Gradient(f, rho, v, d float64) float64 {
	if d == 0 {
		return 0
	}
	return f * (rho * v * v) / (2.0 * d)
}

// Reynolds is ρVD/μ, defined as 0 when v is 0.
func Reynolds(rho, v, d, mu float64) float64 {
	if v == 0 {
		return 0
	}
	return rho * v * d / mu
}

// VelocityPressure is ½ρV² in Pa.
func VelocityPressure(rho, v float64) float64 {
	return 0.5 * rho * v * v
}
