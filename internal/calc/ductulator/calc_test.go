package ductulator

import (
	"errors"
	"math"
	"testing"

	"Handbook/internal/calc"
	"Handbook/internal/calc/friction"
)

func circularInput(dMM float64) Input {
	return Input{
		Section:   CrossSection{Shape: Circular, PrimaryMM: dMM},
		FlowLs:    600,
		LengthM:   10,
		Roughness: Roughness{Preset: Galvanized},
		Fluid:     Air,
	}
}

func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.10g, want %.10g (±%g)", name, got, want, tol)
	}
}

func TestCircularEquivalentDiameterIsDiameter(t *testing.T) {
	for _, d := range []float64{0, 1, 100, 350, 1250.5} {
		cs := CrossSection{Shape: Circular, PrimaryMM: d, SecondaryMM: 999}
		if got := EquivalentDiameter(cs); got != d/1000 {
			t.Errorf("EquivalentDiameter(Ø%g) = %g, want %g", d, got, d/1000)
		}
	}
}

func TestSquareEquivalentDiameter(t *testing.T) {
	for _, w := range []float64{100, 400, 1000} {
		cs := CrossSection{Shape: Rectangular, PrimaryMM: w, SecondaryMM: w}
		wm := w / 1000
		want := 1.30 * math.Pow(wm, 1.25) / math.Pow(2*wm, 0.25)
		got := EquivalentDiameter(cs)
		near(t, "square D_eq", got, want, 1e-12)

		equalArea := math.Sqrt(4 * Area(cs) / math.Pi)
		if got >= equalArea {
			t.Errorf("square %g mm: D_eq %g should be below equal-area diameter %g", w, got, equalArea)
		}
	}
}

func TestScenarioCircular(t *testing.T) {
	res, err := Calculate(circularInput(350))
	if err != nil {
		t.Fatal(err)
	}
	near(t, "area", res.AreaM2, 0.09621127501618741, 1e-12)
	near(t, "velocity", res.VelocityMS, 6.236275321151817, 1e-9)
	near(t, "reynolds", res.ReynoldsNumber, 145513.09082687573, 1e-6)
	if res.Regime != friction.RegimeTurbulent {
		t.Errorf("regime = %s, want turbulent", res.Regime)
	}
	wantF := friction.SwameeJain(res.ReynoldsNumber, 0.00015, 0.35)
	if res.FrictionFactor != wantF {
		t.Errorf("friction factor = %g, want %g", res.FrictionFactor, wantF)
	}
	near(t, "friction factor", res.FrictionFactor, 0.0191809, 1e-6)
	near(t, "gradient", res.PressureGradientPaM, 1.2788019019204449, 1e-9)
	near(t, "total", res.TotalPressureLossPa, 12.788019019204448, 1e-8)
	near(t, "velocity pressure", res.VelocityPressurePa, 0.5*1.2*res.VelocityMS*res.VelocityMS, 1e-12)
}

func TestScenarioRectangular(t *testing.T) {
	in := circularInput(0)
	in.Section = CrossSection{Shape: Rectangular, PrimaryMM: 400, SecondaryMM: 250}
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "area", res.AreaM2, 0.1, 1e-12)
	near(t, "D_eq", res.EquivalentDiameterM, 0.3433325769007561, 1e-12)
	near(t, "velocity", res.VelocityMS, 6.0, 1e-12)
	near(t, "gradient", res.PressureGradientPaM, 1.2174514547329085, 1e-9)

	// The equal-friction diameter of a 400×250 duct is about 13.5 mm
	// smaller than the circle of the same area.
	equalArea := math.Sqrt(4 * res.AreaM2 / math.Pi)
	near(t, "equal-area margin", equalArea-res.EquivalentDiameterM, 0.0134922463, 1e-8)
}

func TestCalculateIsPure(t *testing.T) {
	in := circularInput(315)
	a, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Calculate(in)
	if a != b {
		t.Errorf("results differ between identical calls:\n%+v\n%+v", a, b)
	}
}

func TestDegenerateSection(t *testing.T) {
	cases := []CrossSection{
		{Shape: Circular, PrimaryMM: 0},
		{Shape: Rectangular, PrimaryMM: 0, SecondaryMM: 0},
		{Shape: Rectangular, PrimaryMM: 400, SecondaryMM: 0},
	}
	for _, cs := range cases {
		in := circularInput(0)
		in.Section = cs
		res, err := Calculate(in)
		if err != nil {
			t.Fatalf("%+v: unexpected error %v", cs, err)
		}
		if res.AreaM2 != 0 || res.VelocityMS != 0 || res.ReynoldsNumber != 0 || res.PressureGradientPaM != 0 {
			t.Errorf("%+v: want zero results, got %+v", cs, res)
		}
		if res.Regime != friction.RegimeNone {
			t.Errorf("%+v: regime = %s", cs, res.Regime)
		}
	}
}

func TestZeroFlow(t *testing.T) {
	in := circularInput(350)
	in.FlowLs = 0
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.FrictionFactor != 0 || res.TotalPressureLossPa != 0 {
		t.Errorf("zero flow should give zero loss, got %+v", res)
	}
}

func TestLaminarDuct(t *testing.T) {
	in := circularInput(100)
	in.FlowLs = 0.2
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Regime != friction.RegimeLaminar {
		t.Fatalf("regime = %s, Re = %g", res.Regime, res.ReynoldsNumber)
	}
	near(t, "laminar f", res.FrictionFactor, 64/res.ReynoldsNumber, 1e-9)
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	cases := map[string]func(*Input){
		"negative diameter": func(in *Input) { in.Section.PrimaryMM = -1 },
		"negative height": func(in *Input) {
			in.Section = CrossSection{Shape: Rectangular, PrimaryMM: 100, SecondaryMM: -1}
		},
		"unknown shape":     func(in *Input) { in.Section.Shape = "oval" },
		"negative flow":     func(in *Input) { in.FlowLs = -5 },
		"negative length":   func(in *Input) { in.LengthM = -1 },
		"zero density":      func(in *Input) { in.Fluid.Density = 0 },
		"zero viscosity":    func(in *Input) { in.Fluid.Viscosity = 0 },
		"NaN flow":          func(in *Input) { in.FlowLs = math.NaN() },
		"unknown roughness": func(in *Input) { in.Roughness = Roughness{Preset: "velvet"} },
		"negative custom":   func(in *Input) { in.Roughness = Roughness{Preset: Custom, CustomMM: -0.1} },
	}
	for name, mutate := range cases {
		in := circularInput(350)
		mutate(&in)
		if _, err := Calculate(in); !errors.Is(err, calc.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestRoughnessMeters(t *testing.T) {
	cases := []struct {
		r    Roughness
		want float64
	}{
		{Roughness{Preset: Galvanized}, 0.00015},
		{Roughness{Preset: Spiral}, 0.00009},
		{Roughness{Preset: Flexible}, 0.001},
		{Roughness{Preset: Custom, CustomMM: 0.5}, 0.0005},
		{Roughness{Preset: Custom}, 0},
	}
	for _, c := range cases {
		got, err := c.r.Meters()
		if err != nil {
			t.Fatalf("%+v: %v", c.r, err)
		}
		near(t, string(c.r.Preset), got, c.want, 1e-15)
	}
}
