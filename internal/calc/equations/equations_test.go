package equations

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

func TestAirHeat(t *testing.T) {
	h := AirHeatContent(100, 2, 10)
	near(t, "latent", h.LatentW, 580)
	near(t, "sensible", h.SensibleW, 1213)
	near(t, "total", h.TotalW, 1793)
}

func TestWaterHeatAndAirflow(t *testing.T) {
	near(t, "water", WaterHeatContent(2, 5), 41870)
	near(t, "airflow", Airflow(0.1, 3), 300)
}

func TestAirChanges(t *testing.T) {
	ach, err := AirChanges(200, 250)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "ach", ach, 2.88)
	if _, err := AirChanges(200, 0); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("zero volume: err = %v", err)
	}
}

func TestMix(t *testing.T) {
	t3, err := Mix(100, 20, 200, 25)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "T3", t3, 70.0/3)
	if _, err := Mix(10, 20, -10, 25); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("Q3 = 0: err = %v", err)
	}
}

func TestEvalMissing(t *testing.T) {
	if _, err := EvalMix(MixRequest{Q1: ptr(1)}); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("err = %v", err)
	}
}

func TestHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tools/equations/ach", strings.NewReader(`{"flow_ls":200,"volume_m3":250}`))
	req = mux.SetURLVars(req, map[string]string{"eq": "ach"})
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"value":2.88`) {
		t.Errorf("ach: %d %s", rec.Code, rec.Body)
	}
}
