package fanlaws

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Handbook/internal/calc"

	"github.com/gorilla/mux"
)

func ptr(v float64) *float64 { return &v }

func near(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
		t.Errorf("%s = %.10g, want %.10g", name, got, want)
	}
}

func TestLaws(t *testing.T) {
	q, err := Q2(1, 20, 25, 0.5, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "q2", q, 1.25)

	p, _ := P2(300, 20, 25, 0.5, 0.5, 1.2, 1.2)
	near(t, "p2", p, 468.75)

	pw, _ := Power2(5, 20, 25, 0.5, 0.5, 1.2, 1.2)
	near(t, "power2", pw, 9.765625)

	// doubling the diameter at fixed speed
	pw, _ = Power2(1, 10, 10, 1, 2, 1.2, 1.2)
	near(t, "power2 d×2", pw, 32)

	db, _ := SoundPowerDelta(0.5, 0.5, 20, 25, 343, 343)
	near(t, "ΔPWL", db, 5.330050715443103)

	rho, _ := DensityCorrection(1.2, 1000, 1013, 293, 313)
	near(t, "ρ2", rho, 1.137925878594249)

	near(t, "vp", VelocityPressure(1.2, 10), 60)
}

func TestZeroReference(t *testing.T) {
	errs := []error{}
	_, err := Q2(1, 0, 25, 0.5, 0.5)
	errs = append(errs, err)
	_, err = Q2(1, 20, 25, 0, 0.5)
	errs = append(errs, err)
	_, err = P2(1, 20, 25, 0.5, 0.5, 0, 1.2)
	errs = append(errs, err)
	_, err = Power2(1, 0, 25, 0.5, 0.5, 1.2, 1.2)
	errs = append(errs, err)
	_, err = SoundPowerDelta(0.5, 0, 20, 25, 343, 343)
	errs = append(errs, err)
	_, err = SoundPowerDelta(0.5, 0.5, 20, -25, 343, 343)
	errs = append(errs, err)
	_, err = SoundPowerDelta(0, 0.5, 20, 25, 343, 343)
	errs = append(errs, err)
	_, err = DensityCorrection(1.2, 0, 1013, 293, 313)
	errs = append(errs, err)
	_, err = DensityCorrection(1.2, 1000, 1013, 293, 0)
	errs = append(errs, err)
	for i, err := range errs {
		if !errors.Is(err, calc.ErrInvalidInput) {
			t.Errorf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
	}
}

func TestRequestDefaults(t *testing.T) {
	v, err := EvalPressure(ScaleRequest{P1: ptr(300), N1: ptr(20), N2: ptr(25), D1: ptr(0.5), D2: ptr(0.5)})
	if err != nil {
		t.Fatal(err)
	}
	near(t, "p2", v.Value, 468.75)

	_, err = EvalFlow(FlowRequest{Q1: ptr(1)})
	if err == nil || !strings.Contains(err.Error(), "n1, n2, d1, d2") {
		t.Errorf("err = %v, want every missing field named", err)
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	call := func(law, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/tools/fanlaws/"+law, strings.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"law": law})
		rec := httptest.NewRecorder()
		h.Calc(rec, req)
		return rec
	}

	rec := call("vp", `{"rho":1.2,"v":10}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"value":60`) {
		t.Errorf("vp: %d %s", rec.Code, rec.Body)
	}
	if rec := call("q2", `{"q1":1,"n1":0,"n2":1,"d1":1,"d2":1}`); rec.Code != http.StatusBadRequest {
		t.Errorf("q2 zero n1: %d", rec.Code)
	}
	if rec := call("affinity", `{}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown law: %d", rec.Code)
	}
	if rec := call("vp", `{`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad json: %d", rec.Code)
	}
}
