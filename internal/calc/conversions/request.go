package conversions

import "Handbook/internal/calc"

type Request struct {
	Value *float64 `json:"value"`
	Text  string   `json:"text"`
	From  string   `json:"from"`
	To    string   `json:"to"`
}

type Result struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func value(req Request) (float64, error) {
	var f calc.Fields
	v := f.Get("value", req.Value)
	return v, f.Err()
}

func linear(q Quantity) func(Request) (Result, error) {
	return func(req Request) (Result, error) {
		v, err := value(req)
		if err != nil {
			return Result{}, err
		}
		out, err := Linear(q, v, req.From, req.To)
		return Result{Value: out, Unit: req.To}, err
	}
}

func EvalTemperature(req Request) (Result, error) {
	v, err := value(req)
	if err != nil {
		return Result{}, err
	}
	out, err := Temperature(v, req.From, req.To)
	return Result{Value: out, Unit: req.To}, err
}

// EvalLength reads Text, or Value when Text is empty.
func EvalLength(req Request) (Length, error) {
	text := req.Text
	if text == "" && req.Value != nil {
		return lengthOf(*req.Value, req.From, req.To)
	}
	return ConvertLength(text, req.From, req.To)
}

func lengthOf(v float64, from, to string) (Length, error) {
	if err := calc.Finite(map[string]float64{"value": v}); err != nil {
		return Length{}, err
	}
	var inches float64
	switch from {
	case Inch:
		inches = v
	case Millimetre:
		inches = v / mmPerInch
	default:
		return Length{}, calc.Invalid("unknown length unit %q", from)
	}
	return lengthFromInches(inches, to)
}

func EvalGauge(req Request) (Gauge, error) {
	g := req.From
	if g == "" {
		g = req.Text
	}
	mm, err := GaugeMM(g)
	if err != nil {
		return Gauge{}, err
	}
	return Gauge{Gauge: g, MM: mm}, nil
}

var Quantities = calc.Registry{
	"temperature": calc.Bind(EvalTemperature),
	"velocity":    calc.Bind(linear(Velocity)),
	"flow":        calc.Bind(linear(Flow)),
	"pressure":    calc.Bind(linear(Pressure)),
	"power":       calc.Bind(linear(Power)),
	"length":      calc.Bind(EvalLength),
	"gauge":       calc.Bind(EvalGauge),
}
