// Package power has the three forms of electrical power.
package power

import "Handbook/internal/calc"

func VI(v, i float64) float64 { return v * i }

func V2R(v, r float64) (float64, error) {
	if r == 0 {
		return 0, calc.Invalid("resistance must be non-zero")
	}
	return v * v / r, nil
}

func I2R(i, r float64) float64 { return i * i * r }

type Request struct {
	V *float64 `json:"v"`
	I *float64 `json:"i"`
	R *float64 `json:"r"`
}

func watts(p float64, err error) (calc.Value, error) {
	return calc.Value{Symbol: "P", Value: p, Unit: "W"}, err
}

func EvalVI(req Request) (calc.Value, error) {
	var f calc.Fields
	v, i := f.Get("v", req.V), f.Get("i", req.I)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	return watts(VI(v, i), nil)
}

func EvalV2R(req Request) (calc.Value, error) {
	var f calc.Fields
	v, r := f.Get("v", req.V), f.Get("r", req.R)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	return watts(V2R(v, r))
}

func EvalI2R(req Request) (calc.Value, error) {
	var f calc.Fields
	i, r := f.Get("i", req.I), f.Get("r", req.R)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	return watts(I2R(i, r), nil)
}

var Equations = calc.Registry{
	"vi":  calc.Bind(EvalVI),
	"v2r": calc.Bind(EvalV2R),
	"i2r": calc.Bind(EvalI2R),
}
