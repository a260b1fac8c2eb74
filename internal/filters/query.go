package filters

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"Handbook/internal/calc"
)

type Basis string

const (
	Actual  Basis = "actual"
	Nominal Basis = "nominal"
)

// Query selects catalogue rows. Nil bounds and sizes are ignored.
type Query struct {
	Code       string   `json:"code"`
	Classes    []string `json:"classes"`
	AirflowMin *float64 `json:"airflow_min"`
	AirflowMax *float64 `json:"airflow_max"`
	ResMin     *float64 `json:"resistance_min"`
	ResMax     *float64 `json:"resistance_max"`
	Basis      Basis    `json:"basis"`
	H          *float64 `json:"h"`
	W          *float64 `json:"w"`
	D          *float64 `json:"d"`
	Tol        *float64 `json:"tol"`
}

type Row struct {
	Product
	NominalSize string  `json:"nominal_size"`
	ActualSize  string  `json:"actual_size"`
	Distance    float64 `json:"distance"`
	Delta       string  `json:"delta"`
}

type Result struct {
	Rows    []Row  `json:"rows"`
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}

func (q Query) validate() error {
	vals := map[string]float64{}
	for name, v := range map[string]*float64{
		"airflow_min": q.AirflowMin, "airflow_max": q.AirflowMax,
		"resistance_min": q.ResMin, "resistance_max": q.ResMax,
		"h": q.H, "w": q.W, "d": q.D, "tol": q.Tol,
	} {
		if v != nil {
			vals[name] = *v
		}
	}
	if err := calc.Finite(vals); err != nil {
		return err
	}
	if q.Tol != nil && *q.Tol < 0 {
		return calc.Invalid("tolerance must not be negative")
	}
	switch q.Basis {
	case "", Actual, Nominal:
	default:
		return calc.Invalid("unknown size basis %q", q.Basis)
	}
	return nil
}

func within(v float64, lo, hi *float64) bool {
	return (lo == nil || v >= *lo) && (hi == nil || v <= *hi)
}

// Search filters the catalogue by q. When any of H, W or D is given, rows
// outside ±Tol on a given axis are dropped and the rest are ordered by
// |ΔH| + |ΔW| + 2|ΔD|, then by H and W. The order is stable.
func (c *Catalog) Search(q Query) (Result, error) {
	if err := q.validate(); err != nil {
		return Result{}, err
	}
	basis := q.Basis
	if basis == "" {
		basis = Actual
	}
	tol := 0.0
	if q.Tol != nil {
		tol = *q.Tol
	}
	code := strings.ToLower(strings.TrimSpace(q.Code))
	sized := q.H != nil || q.W != nil || q.D != nil

	rows := []Row{}
	for _, p := range c.products {
		if code != "" && !strings.Contains(strings.ToLower(p.Code), code) {
			continue
		}
		if len(q.Classes) > 0 && !slices.Contains(q.Classes, p.Classification) {
			continue
		}
		if !within(p.AirflowLs, q.AirflowMin, q.AirflowMax) || !within(p.InitialResPa, q.ResMin, q.ResMax) {
			continue
		}
		size := p.Actual
		if basis == Nominal {
			size = p.Nominal
		}
		row := Row{Product: p, NominalSize: p.Nominal.String(), ActualSize: p.Actual.String()}
		if sized {
			var parts []string
			ok := true
			axis := func(name string, got float64, want *float64, weight float64) {
				if want == nil {
					return
				}
				d := math.Abs(got - *want)
				if d > tol {
					ok = false
				}
				row.Distance += weight * d
				parts = append(parts, fmt.Sprintf("Δ%s=%d", name, int(math.Round(d))))
			}
			axis("H", size.H, q.H, 1)
			axis("W", size.W, q.W, 1)
			axis("D", size.D, q.D, 2)
			if !ok {
				continue
			}
			row.Delta = strings.Join(parts, ", ")
		}
		rows = append(rows, row)
	}

	if sized {
		sizeOf := func(r Row) Dims {
			if basis == Nominal {
				return r.Nominal
			}
			return r.Actual
		}
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.Distance != b.Distance {
				return a.Distance < b.Distance
			}
			sa, sb := sizeOf(a), sizeOf(b)
			if sa.H != sb.H {
				return sa.H < sb.H
			}
			return sa.W < sb.W
		})
	}
	return Result{Rows: rows, Count: len(rows), Summary: summary(len(rows), basis, q, tol)}, nil
}

func summary(n int, basis Basis, q Query, tol float64) string {
	s := fmt.Sprintf("%d matching rows", n)
	var trip []string
	for _, a := range []struct {
		name string
		v    *float64
	}{{"H", q.H}, {"W", q.W}, {"D", q.D}} {
		if a.v != nil {
			trip = append(trip, fmt.Sprintf("%s=%.0f", a.name, *a.v))
		}
	}
	if len(trip) == 0 {
		return s
	}
	which := "Actual"
	if basis == Nominal {
		which = "Nominal"
	}
	return fmt.Sprintf("%s · %s size near %s ±%.0f mm", s, which, strings.Join(trip, "×"), tol)
}
