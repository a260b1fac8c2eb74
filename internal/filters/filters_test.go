package filters

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"Handbook/internal/calc"
	"Handbook/internal/repo"

	"github.com/xuri/excelize/v2"
)

func ptr(v float64) *float64 { return &v }

const sample = `Product code,Nominal Size (mm),Actual Size (mm),Airflow Capacity (L/sec),Initial Resistance (Pa),Filter Classification
A1,600 x 600 x 50,592 x 592 x 47,"1,100",45,F7
A2,600 x 600 x 50,595 x 595 x 47,1000,40,G4
A3,500 x 500 x 50,492 x 492 x 47,700,45,F7
A4,600 x 600 x 100,592 x 592 x 96,1400,60,F7
A5,600 x 600 x 50,589 x 592 x 47,1000,45,G4
BAD,600 x 600,n/a,1000,45,G4
`

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := ReadCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func codes(rows []Row) string {
	var s []string
	for _, r := range rows {
		s = append(s, r.Code)
	}
	return strings.Join(s, ",")
}

func TestParseTriplet(t *testing.T) {
	d, ok := ParseTriplet("592 x 592 x 47")
	if !ok || d != (Dims{592, 592, 47}) {
		t.Errorf("ParseTriplet = %v, %v", d, ok)
	}
	d, ok = ParseTriplet("287×592×22.5 mm")
	if !ok || d.D != 22.5 {
		t.Errorf("ParseTriplet = %v, %v", d, ok)
	}
	if _, ok := ParseTriplet("600 x 600"); ok {
		t.Error("two numbers parsed as a size")
	}
	if got := (Dims{591.6, 592, 46.5}).String(); got != "592×592×47" {
		t.Errorf("String = %s", got)
	}
}

func TestReadCSVSkipsUnparsedRows(t *testing.T) {
	c := sampleCatalog(t)
	if c.Len() != 5 {
		t.Fatalf("len = %d, want 5", c.Len())
	}
	if p := c.Products()[0]; p.AirflowLs != 1100 {
		t.Errorf("airflow = %g", p.AirflowLs)
	}
	if got := strings.Join(c.Classes(), ","); got != "F7,G4" {
		t.Errorf("classes = %s", got)
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("Product code,Actual Size (mm)\nA1,1 x 2 x 3\n")); err == nil {
		t.Error("want missing column error")
	}
}

func TestEmbeddedCatalog(t *testing.T) {
	c, err := Embedded()
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() == 0 || len(c.Classes()) == 0 {
		t.Errorf("embedded catalogue: %d rows, classes %v", c.Len(), c.Classes())
	}
}

func TestNoFiltersReturnsAll(t *testing.T) {
	res, err := sampleCatalog(t).Search(Query{})
	if err != nil {
		t.Fatal(err)
	}
	if codes(res.Rows) != "A1,A2,A3,A4,A5" || res.Summary != "5 matching rows" {
		t.Errorf("rows %s, summary %q", codes(res.Rows), res.Summary)
	}
	for _, r := range res.Rows {
		if r.Delta != "" {
			t.Errorf("%s delta %q without a target size", r.Code, r.Delta)
		}
	}
}

func TestColumnFilters(t *testing.T) {
	c := sampleCatalog(t)
	cases := []struct {
		q    Query
		want string
	}{
		{Query{Code: "a3"}, "A3"},
		{Query{Classes: []string{"G4"}}, "A2,A5"},
		{Query{AirflowMin: ptr(1000), AirflowMax: ptr(1100)}, "A1,A2,A5"},
		{Query{ResMax: ptr(44)}, "A2"},
		{Query{Classes: []string{"F7"}, ResMin: ptr(50)}, "A4"},
	}
	for _, tc := range cases {
		res, err := c.Search(tc.q)
		if err != nil {
			t.Fatal(err)
		}
		if got := codes(res.Rows); got != tc.want {
			t.Errorf("%+v: %s, want %s", tc.q, got, tc.want)
		}
	}
}

func TestNearestSize(t *testing.T) {
	res, err := sampleCatalog(t).Search(Query{H: ptr(592), W: ptr(592), D: ptr(47), Tol: ptr(5)})
	if err != nil {
		t.Fatal(err)
	}
	// A1 exact, A5 ΔH=3, A2 ΔH=3 ΔW=3; A3 and A4 outside ±5
	if got := codes(res.Rows); got != "A1,A5,A2" {
		t.Fatalf("order = %s", got)
	}
	if res.Rows[1].Delta != "ΔH=3, ΔW=0, ΔD=0" || res.Rows[1].Distance != 3 {
		t.Errorf("A5 delta %q dist %g", res.Rows[1].Delta, res.Rows[1].Distance)
	}
	if res.Summary != "3 matching rows · Actual size near H=592×W=592×D=47 ±5 mm" {
		t.Errorf("summary = %q", res.Summary)
	}
}

func TestDepthWeightsDouble(t *testing.T) {
	res, err := sampleCatalog(t).Search(Query{W: ptr(592), D: ptr(50), Tol: ptr(100)})
	if err != nil {
		t.Fatal(err)
	}
	// ΔD=3 costs 6; A3 (ΔW=100, ΔD=3) sorts last
	if got := codes(res.Rows); !strings.HasSuffix(got, "A3") {
		t.Errorf("order = %s", got)
	}
}

func TestTieBreakByHeightThenWidthStable(t *testing.T) {
	// every row is 1 mm from the target in one axis
	data := `Product code,Nominal Size (mm),Actual Size (mm),Airflow Capacity (L/sec),Initial Resistance (Pa),Filter Classification
X1,0x0x0,101 x 100 x 50,1,1,G4
X2,0x0x0,99 x 100 x 50,1,1,G4
X3,0x0x0,100 x 101 x 50,1,1,G4
X4,0x0x0,100 x 99 x 50,1,1,G4
X5,0x0x0,100 x 99 x 50,1,1,G4
`
	c, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	res, _ := c.Search(Query{H: ptr(100), W: ptr(100), Tol: ptr(1)})
	if got := codes(res.Rows); got != "X2,X4,X5,X3,X1" {
		t.Errorf("order = %s", got)
	}
}

func TestNominalBasis(t *testing.T) {
	res, err := sampleCatalog(t).Search(Query{Basis: Nominal, H: ptr(600), W: ptr(600)})
	if err != nil {
		t.Fatal(err)
	}
	if got := codes(res.Rows); got != "A1,A2,A4,A5" {
		t.Errorf("rows = %s", got)
	}
	if !strings.Contains(res.Summary, "Nominal size near H=600×W=600 ±0 mm") {
		t.Errorf("summary = %q", res.Summary)
	}
}

func TestInvalidQuery(t *testing.T) {
	c := sampleCatalog(t)
	for _, q := range []Query{{Basis: "diagonal"}, {H: ptr(1), Tol: ptr(-1)}} {
		if _, err := c.Search(q); !errors.Is(err, calc.ErrInvalidInput) {
			t.Errorf("%+v: err = %v", q, err)
		}
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"Product code", "Nominal Size (mm)", "Actual Size (mm)", "Airflow Capacity (L/sec)", "Initial Resistance (Pa)", "Filter Classification"},
		{"W1", "600 x 600 x 50", "592 x 592 x 47", 1100, 45, "F7"},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	c, err := ReadXLSX(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 || c.Products()[0].AirflowLs != 1100 {
		t.Errorf("products = %+v", c.Products())
	}
}

type fakeRepository []repo.FilterProduct

func (f fakeRepository) ListFilterProducts(context.Context) ([]repo.FilterProduct, error) {
	return f, nil
}

var _ repo.Repository = fakeRepository(nil)

func TestFromRepository(t *testing.T) {
	c, err := FromRepository(context.Background(), fakeRepository{
		{Code: "P1", NominalSize: "600x600x50", ActualSize: "592x592x47", AirflowLs: 1000, InitialResPa: 40, Classification: "G4"},
		{Code: "P2", ActualSize: "unknown"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 || c.Products()[0].Actual != (Dims{592, 592, 47}) {
		t.Errorf("products = %+v", c.Products())
	}
}

func TestLoadSources(t *testing.T) {
	if _, err := Load(context.Background(), SourceEmbedded, ""); err != nil {
		t.Errorf("embedded: %v", err)
	}
	if _, err := Load(context.Background(), SourceCSV, filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing csv: want error")
	}
	if _, err := Load(context.Background(), "s3", ""); err == nil {
		t.Error("unknown source: want error")
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{Catalog: sampleCatalog(t)}
	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodPost, "/api/filters/search", strings.NewReader(`{"classes":["G4"]}`)))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"count":2`) {
		t.Errorf("search: %d %s", rec.Code, rec.Body)
	}
	rec = httptest.NewRecorder()
	h.Classes(rec, httptest.NewRequest(http.MethodGet, "/api/filters/classes", nil))
	if strings.TrimSpace(rec.Body.String()) != `["F7","G4"]` {
		t.Errorf("classes: %s", rec.Body)
	}
}
