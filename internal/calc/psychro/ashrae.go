package psychro

import (
	"math"

	"Handbook/internal/calc"
)

const (
	StandardPressure = 101325.0
	// ratio of the molecular masses of water vapour and dry air
	epsilon = 0.621945
	rDryAir = 287.042
)

// ASHRAE is the built-in PropertySource: the Hyland-Wexler saturation
// pressure with the humid-air relations of ASHRAE Fundamentals ch. 1 (SI).
type ASHRAE struct{}

// SaturationPressure returns the saturation vapour pressure in Pa over ice
// (t ≤ 0 °C) or liquid water.
func SaturationPressure(t float64) float64 {
	tk := t + 273.15
	var ln float64
	if t <= 0 {
		ln = -5.6745359e3/tk + 6.3925247 - 9.677843e-3*tk + 6.2215701e-7*tk*tk +
			2.0747825e-9*math.Pow(tk, 3) - 9.484024e-13*math.Pow(tk, 4) + 4.1635019*math.Log(tk)
	} else {
		ln = -5.8002206e3/tk + 1.3914993 - 4.8640239e-2*tk + 4.1764768e-5*tk*tk -
			1.4452093e-8*math.Pow(tk, 3) + 6.5459673*math.Log(tk)
	}
	return math.Exp(ln)
}

func humidityRatio(pw, p float64) float64 {
	return epsilon * pw / (p - pw)
}

// HumidityRatio in kg/kg dry air at dry bulb t (°C), relative humidity rh
// (0..1) and pressure p (Pa).
func (ASHRAE) HumidityRatio(t, rh, p float64) (float64, error) {
	if err := check(t, rh, p); err != nil {
		return 0, err
	}
	return humidityRatio(rh*SaturationPressure(t), p), nil
}

func (a ASHRAE) State(t, rh, p float64) (State, error) {
	if err := check(t, rh, p); err != nil {
		return State{}, err
	}
	pw := rh * SaturationPressure(t)
	w := humidityRatio(pw, p)
	s := State{
		DryBulbC:       t,
		RelHumidity:    rh * 100,
		PressurePa:     p,
		HumidityRatio:  w * 1000,
		Enthalpy:       1.006*t + w*(2501+1.86*t),
		SpecificVolume: rDryAir * (t + 273.15) * (1 + 1.607858*w) / p,
		VapourPressure: pw,
	}
	lo := -100.0
	if pw > 0 {
		td := bisect(func(x float64) float64 { return SaturationPressure(x) - pw }, -100, t)
		s.DewPointC = &td
		lo = td
	}
	s.WetBulbC = bisect(func(x float64) float64 { return wetBulbRatio(t, x, p) - w }, lo, t)
	return s, nil
}

// wetBulbRatio is the humidity ratio implied by dry bulb t and wet bulb twb.
func wetBulbRatio(t, twb, p float64) float64 {
	ws := humidityRatio(SaturationPressure(twb), p)
	if twb >= 0 {
		return ((2501-2.326*twb)*ws - 1.006*(t-twb)) / (2501 + 1.86*t - 4.186*twb)
	}
	return ((2830-0.24*twb)*ws - 1.006*(t-twb)) / (2830 + 1.86*t - 2.1*twb)
}

// bisect finds the root of an increasing f on [lo, hi].
func bisect(f func(float64) float64, lo, hi float64) float64 {
	for i := 0; i < 100 && hi-lo > 1e-9; i++ {
		mid := (lo + hi) / 2
		if f(mid) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}

func check(t, rh, p float64) error {
	if err := calc.Finite(map[string]float64{"dry bulb": t, "relative humidity": rh, "pressure": p}); err != nil {
		return err
	}
	if t < -100 || t > 200 {
		return calc.Invalid("dry bulb %g °C outside -100..200 °C", t)
	}
	if rh < 0 || rh > 1 {
		return calc.Invalid("relative humidity must be within 0..100 %%")
	}
	if p <= 0 || rh*SaturationPressure(t) >= p {
		return calc.Invalid("pressure %g Pa too low for this state", p)
	}
	return nil
}
