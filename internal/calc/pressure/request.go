package pressure

import "Handbook/internal/calc"

const water = 1000.0

type StaticRequest struct {
	ZH  *float64 `json:"z_h"`
	ZA  *float64 `json:"z_a"`
	Rho *float64 `json:"rho"`
	PP  *float64 `json:"p_pump"`
	PL  *float64 `json:"p_loss"`
}

func EvalStatic(req StaticRequest) (Static, error) {
	var f calc.Fields
	zh, za := f.Get("z_h", req.ZH), f.Get("z_a", req.ZA)
	rho := f.Or("rho", req.Rho, water)
	pp, pl := f.Or("p_pump", req.PP, 0), f.Or("p_loss", req.PL, 0)
	if err := f.Err(); err != nil {
		return Static{}, err
	}
	return StaticAt(zh, za, rho, pp, pl)
}

type VelocityRequest struct {
	Rho *float64 `json:"rho"`
	V1  *float64 `json:"v1"`
	V2  *float64 `json:"v2"`
}

func EvalVelocityChange(req VelocityRequest) (calc.Value, error) {
	var f calc.Fields
	rho := f.Or("rho", req.Rho, 1.2)
	v1, v2 := f.Get("v1", req.V1), f.Get("v2", req.V2)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	return calc.Value{Symbol: "Δp_v", Value: VelocityChange(rho, v1, v2), Unit: "Pa"}, nil
}

// FittingRequest takes either a velocity (with density) or the two velocity
// pressures Pv1 and Pv2.
type FittingRequest struct {
	K   *float64 `json:"k"`
	Rho *float64 `json:"rho"`
	V   *float64 `json:"v"`
	Pv1 *float64 `json:"pv1"`
	Pv2 *float64 `json:"pv2"`
}

func EvalFitting(req FittingRequest) (Fitting, error) {
	var f calc.Fields
	k := f.Get("k", req.K)
	if req.V == nil && req.Pv1 != nil {
		pv1, pv2 := f.Get("pv1", req.Pv1), f.Get("pv2", req.Pv2)
		if err := f.Err(); err != nil {
			return Fitting{}, err
		}
		return Fitting{VelocityPressurePa: pv1 - pv2, LossPa: FittingLossBetween(k, pv1, pv2)}, nil
	}
	rho := f.Or("rho", req.Rho, 1.2)
	v := f.Get("v", req.V)
	if err := f.Err(); err != nil {
		return Fitting{}, err
	}
	return FittingLoss(k, rho, v), nil
}

var Equations = calc.Registry{
	"static":          calc.Bind(EvalStatic),
	"velocity-change": calc.Bind(EvalVelocityChange),
	"fitting":         calc.Bind(EvalFitting),
}
