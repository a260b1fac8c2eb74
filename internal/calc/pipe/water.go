package pipe

import (
	"math"

	"Handbook/internal/calc"
)

// Water holds liquid water properties at atmospheric pressure.
type Water struct {
	TemperatureC float64 `json:"temperature_c"`
	Density      float64 `json:"density_kg_m3"`
	Viscosity    float64 `json:"viscosity_pa_s"`
}

// PropertySource supplies water properties for a temperature in °C.
type PropertySource interface {
	Water(tC float64) (Water, error)
}

// Correlations is the built-in PropertySource: Kell (1975) for density and
// the Vogel equation for dynamic viscosity. Valid from 0 to 100 °C.
type Correlations struct{}

func (Correlations) Water(tC float64) (Water, error) {
	if math.IsNaN(tC) || tC < 0 || tC > 100 {
		return Water{}, calc.Invalid("water temperature %g °C outside 0-100 °C", tC)
	}
	t := tC
	rho := (999.83952 + 16.945176*t - 7.9870401e-3*t*t - 46.170461e-6*t*t*t +
		105.56302e-9*t*t*t*t - 280.54253e-12*t*t*t*t*t) / (1 + 16.879850e-3*t)
	mu := 2.414e-5 * math.Pow(10, 247.8/(t+273.15-140))
	return Water{TemperatureC: tC, Density: rho, Viscosity: mu}, nil
}
