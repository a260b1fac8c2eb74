package equations

import "Handbook/internal/calc"

type AirHeatRequest struct {
	FlowLs *float64 `json:"flow_ls"`
	DeltaG *float64 `json:"delta_g_kg"`
	DeltaT *float64 `json:"delta_t"`
}

func EvalAirHeat(req AirHeatRequest) (AirHeat, error) {
	var f calc.Fields
	q, dg, dt := f.Get("flow_ls", req.FlowLs), f.Get("delta_g_kg", req.DeltaG), f.Get("delta_t", req.DeltaT)
	if err := f.Err(); err != nil {
		return AirHeat{}, err
	}
	return AirHeatContent(q, dg, dt), nil
}

type WaterHeatRequest struct {
	FlowLs *float64 `json:"flow_ls"`
	DeltaT *float64 `json:"delta_t"`
}

func EvalWaterHeat(req WaterHeatRequest) (calc.Value, error) {
	var f calc.Fields
	q, dt := f.Get("flow_ls", req.FlowLs), f.Get("delta_t", req.DeltaT)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	return calc.Value{Symbol: "Q", Value: WaterHeatContent(q, dt), Unit: "W"}, nil
}

type AirflowRequest struct {
	Area     *float64 `json:"area_m2"`
	Velocity *float64 `json:"velocity_m_s"`
}

func EvalAirflow(req AirflowRequest) (calc.Value, error) {
	var f calc.Fields
	a, v := f.Get("area_m2", req.Area), f.Get("velocity_m_s", req.Velocity)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	return calc.Value{Symbol: "Q", Value: Airflow(a, v), Unit: "L/s"}, nil
}

type AirChangeRequest struct {
	FlowLs *float64 `json:"flow_ls"`
	Volume *float64 `json:"volume_m3"`
}

func EvalAirChanges(req AirChangeRequest) (calc.Value, error) {
	var f calc.Fields
	q, v := f.Get("flow_ls", req.FlowLs), f.Get("volume_m3", req.Volume)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	ach, err := AirChanges(q, v)
	return calc.Value{Symbol: "ACH", Value: ach, Unit: "1/h"}, err
}

type MixRequest struct {
	Q1 *float64 `json:"q1"`
	T1 *float64 `json:"t1"`
	Q2 *float64 `json:"q2"`
	T2 *float64 `json:"t2"`
}

func EvalMix(req MixRequest) (calc.Value, error) {
	var f calc.Fields
	q1, t1 := f.Get("q1", req.Q1), f.Get("t1", req.T1)
	q2, t2 := f.Get("q2", req.Q2), f.Get("t2", req.T2)
	if err := f.Err(); err != nil {
		return calc.Value{}, err
	}
	t3, err := Mix(q1, t1, q2, t2)
	return calc.Value{Symbol: "T3", Value: t3, Unit: "°C"}, err
}

var Equations = calc.Registry{
	"air-heat":   calc.Bind(EvalAirHeat),
	"water-heat": calc.Bind(EvalWaterHeat),
	"airflow":    calc.Bind(EvalAirflow),
	"ach":        calc.Bind(EvalAirChanges),
	"mixing":     calc.Bind(EvalMix),
}
