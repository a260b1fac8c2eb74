// Package pressure covers static, velocity and fitting pressures in ducts
// and pipes.
package pressure

import "Handbook/internal/calc"

const G = 9.81

type Static struct {
	PressurePa float64 `json:"pressure_pa"`
	HeadM      float64 `json:"head_m"`
}

// StaticAt returns the static pressure at A, p = (zH - zA)ρg + pp - pL, and
// the equivalent fluid head p/(ρg).
func StaticAt(zh, za, rho, pp, pl float64) (Static, error) {
	if rho <= 0 {
		return Static{}, calc.Invalid("density must be positive")
	}
	p := (zh-za)*rho*G + pp - pl
	return Static{PressurePa: p, HeadM: p / (rho * G)}, nil
}

// VelocityChange is ½ρ(v1² - v2²).
func VelocityChange(rho, v1, v2 float64) float64 {
	return 0.5 * rho * (v1*v1 - v2*v2)
}

type Fitting struct {
	VelocityPressurePa float64 `json:"velocity_pressure_pa"`
	LossPa             float64 `json:"loss_pa"`
}

// FittingLoss is K·½ρv².
func FittingLoss(k, rho, v float64) Fitting {
	pv := 0.5 * rho * v * v
	return Fitting{VelocityPressurePa: pv, LossPa: k * pv}
}

// FittingLossBetween is K·(Pv1 - Pv2) for fittings rated on a velocity
// pressure difference.
func FittingLossBetween(k, pv1, pv2 float64) float64 {
	return k * (pv1 - pv2)
}
