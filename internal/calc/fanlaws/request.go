package fanlaws

import (
	"Handbook/internal/calc"
)

type FlowRequest struct {
	Q1 *float64 `json:"q1"`
	N1 *float64 `json:"n1"`
	N2 *float64 `json:"n2"`
	D1 *float64 `json:"d1"`
	D2 *float64 `json:"d2"`
}

func EvalFlow(req FlowRequest) (calc.Value, error) {
	var f calc.Fields
	q1, n1, n2 := f.Get("q1", req.Q1), f.Get("n1", req.N1), f.Get("n2", req.N2)
	d1, d2 := f.Get("d1", req.D1), f.Get("d2", req.D2)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	v, err := Q2(q1, n1, n2, d1, d2)
	return calc.Value{Symbol: "q2", Value: v, Unit: "m³/s"}, err
}

// ScaleRequest serves both the pressure and the power law; P1 is the
// reference pressure (Pa) or power (kW). Densities default to 1.2 kg/m³.
type ScaleRequest struct {
	P1   *float64 `json:"p1"`
	N1   *float64 `json:"n1"`
	N2   *float64 `json:"n2"`
	D1   *float64 `json:"d1"`
	D2   *float64 `json:"d2"`
	Rho1 *float64 `json:"rho1"`
	Rho2 *float64 `json:"rho2"`
}

const defaultDensity = 1.2

func (req ScaleRequest) values() (p1, n1, n2, d1, d2, rho1, rho2 float64, err error) {
	var f calc.Fields
	p1, n1, n2 = f.Get("p1", req.P1), f.Get("n1", req.N1), f.Get("n2", req.N2)
	d1, d2 = f.Get("d1", req.D1), f.Get("d2", req.D2)
	rho1, rho2 = f.Or("rho1", req.Rho1, defaultDensity), f.Or("rho2", req.Rho2, defaultDensity)
	err = f.Err()
	return
}

func EvalPressure(req ScaleRequest) (calc.Value, error) {
	p1, n1, n2, d1, d2, rho1, rho2, err := req.values()
	if err != nil {
		return calc.Value{}, err
	}
	v, err := P2(p1, n1, n2, d1, d2, rho1, rho2)
	return calc.Value{Symbol: "p2", Value: v, Unit: "Pa"}, err
}

func EvalPower(req ScaleRequest) (calc.Value, error) {
	p1, n1, n2, d1, d2, rho1, rho2, err := req.values()
	if err != nil {
		return calc.Value{}, err
	}
	v, err := Power2(p1, n1, n2, d1, d2, rho1, rho2)
	return calc.Value{Symbol: "P2", Value: v, Unit: "kW"}, err
}

type SoundRequest struct {
	D1 *float64 `json:"d1"`
	D2 *float64 `json:"d2"`
	N1 *float64 `json:"n1"`
	N2 *float64 `json:"n2"`
	C1 *float64 `json:"c1"`
	C2 *float64 `json:"c2"`
}

func EvalSound(req SoundRequest) (calc.Value, error) {
	var f calc.Fields
	d1, d2 := f.Get("d1", req.D1), f.Get("d2", req.D2)
	n1, n2 := f.Get("n1", req.N1), f.Get("n2", req.N2)
	c1, c2 := f.Or("c1", req.C1, 343), f.Or("c2", req.C2, 343)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	v, err := SoundPowerDelta(d1, d2, n1, n2, c1, c2)
	return calc.Value{Symbol: "ΔPWL", Value: v, Unit: "dB"}, err
}

type DensityRequest struct {
	Rho1 *float64 `json:"rho1"`
	B1   *float64 `json:"b1"`
	B2   *float64 `json:"b2"`
	T1   *float64 `json:"t1"`
	T2   *float64 `json:"t2"`
}

func EvalDensity(req DensityRequest) (calc.Value, error) {
	var f calc.Fields
	rho1 := f.Get("rho1", req.Rho1)
	b1, b2 := f.Get("b1", req.B1), f.Get("b2", req.B2)
	t1, t2 := f.Get("t1", req.T1), f.Get("t2", req.T2)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	v, err := DensityCorrection(rho1, b1, b2, t1, t2)
	return calc.Value{Symbol: "ρ2", Value: v, Unit: "kg/m³"}, err
}

type VelocityRequest struct {
	Rho *float64 `json:"rho"`
	V   *float64 `json:"v"`
}

func EvalVelocityPressure(req VelocityRequest) (calc.Value, error) {
	var f calc.Fields
	rho := f.Or("rho", req.Rho, defaultDensity)
	v := f.Get("v", req.V)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	return calc.Value{Symbol: "p_d", Value: VelocityPressure(rho, v), Unit: "Pa"}, nil
}

// Laws is every fan law by route name.
var Laws = calc.Registry{
	"q2":      calc.Bind(EvalFlow),
	"p2":      calc.Bind(EvalPressure),
	"power2":  calc.Bind(EvalPower),
	"pwl":     calc.Bind(EvalSound),
	"density": calc.Bind(EvalDensity),
	"vp":      calc.Bind(EvalVelocityPressure),
}
