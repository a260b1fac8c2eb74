// Package fanlaws scales fan performance between two operating points.
package fanlaws

import (
	"math"

	"Handbook/internal/calc"
)

// Q2 = q1 (n2/n1) (d2/d1)³
func Q2(q1, n1, n2, d1, d2 float64) (float64, error) {
	if n1 == 0 || d1 == 0 {
		return 0, calc.Invalid("n1 and d1 must be non-zero")
	}
	return q1 * (n2 / n1) * math.Pow(d2/d1, 3), nil
}

// P2 = p1 (n2/n1)² (d2/d1)² (ρ2/ρ1)
func P2(p1, n1, n2, d1, d2, rho1, rho2 float64) (float64, error) {
	if n1 == 0 || d1 == 0 || rho1 == 0 {
		return 0, calc.Invalid("n1, d1 and rho1 must be non-zero")
	}
	return p1 * math.Pow(n2/n1, 2) * math.Pow(d2/d1, 2) * (rho2 / rho1), nil
}

// Power2 = P1 (n2/n1)³ (d2/d1)⁵ (ρ2/ρ1)
func Power2(pw1, n1, n2, d1, d2, rho1, rho2 float64) (float64, error) {
	if n1 == 0 || d1 == 0 || rho1 == 0 {
		return 0, calc.Invalid("n1, d1 and rho1 must be non-zero")
	}
	return pw1 * math.Pow(n2/n1, 3) * math.Pow(d2/d1, 5) * (rho2 / rho1), nil
}

// SoundPowerDelta is the change in sound power level in dB for a change of
// fan diameter, speed and speed of sound. Every ratio must be positive.
func SoundPowerDelta(d1, d2, n1, n2, c1, c2 float64) (float64, error) {
	rd, rn, rc := d2/d1, n2/n1, c2/c1
	if !(rd > 0) || !(rn > 0) || !(rc > 0) || math.IsInf(rd, 0) || math.IsInf(rn, 0) || math.IsInf(rc, 0) {
		return 0, calc.Invalid("d2/d1, n2/n1 and c2/c1 must be positive")
	}
	return 70*math.Log10(rd) + 55*math.Log10(rn) + 20*math.Log10(rc), nil
}

// DensityCorrection gives ρ2 = ρ1 (B2/B1) (T1/T2) with T in kelvin.
func DensityCorrection(rho1, b1, b2, t1, t2 float64) (float64, error) {
	if b1 == 0 || t2 == 0 {
		return 0, calc.Invalid("B1 and T2 must be non-zero")
	}
	return rho1 * (b2 / b1) * (t1 / t2), nil
}

// VelocityPressure is ½ρV² in Pa.
func VelocityPressure(rho, v float64) float64 {
	return 0.5 * rho * v * v
}

var nomenclature = []calc.Symbol{
	{Symbol: "qᵥ", Meaning: "Volume flow of air", Units: "m³/s"},
	{Symbol: "n", Meaning: "Rotational speed of fan", Units: "rev/s"},
	{Symbol: "d", Meaning: "Diameter of fan", Units: "m"},
	{Symbol: "p", Meaning: "Pressure developed by the fan", Units: "Pa"},
	{Symbol: "ρ", Meaning: "Density of air", Units: "kg/m³"},
	{Symbol: "Pᵣ", Meaning: "Power absorbed by the fan", Units: "kW"},
	{Symbol: "B", Meaning: "Barometric pressure", Units: "mbar"},
	{Symbol: "T", Meaning: "Absolute temperature", Units: "K = °C + 273"},
	{Symbol: "pₜF", Meaning: "Fan total pressure", Units: "Pa"},
	{Symbol: "pₛF", Meaning: "Fan static pressure", Units: "Pa"},
	{Symbol: "p_d", Meaning: "System dynamic/velocity pressure", Units: "Pa"},
	{Symbol: "V", Meaning: "Velocity of air", Units: "m/s"},
	{Symbol: "PWL", Meaning: "Sound power level", Units: "dB"},
}

func Nomenclature() []calc.Symbol {
	return append([]calc.Symbol(nil), nomenclature...)
}
