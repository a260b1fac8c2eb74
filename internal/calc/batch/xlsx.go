package batch

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"Handbook/internal/calc"
	"Handbook/internal/calc/ductulator"

	"github.com/xuri/excelize/v2"
)

// Columns of an import sheet. The first row is a header and is skipped.
var importHeader = []string{
	"shape", "flow_ls", "diameter_or_width_mm", "height_mm", "length_m", "roughness", "custom_roughness_mm",
}

var exportHeader = []string{
	"shape", "flow_ls", "diameter_or_width_mm", "height_mm", "length_m", "roughness",
	"area_m2", "equivalent_diameter_mm", "velocity_m_s", "reynolds", "friction_factor",
	"pa_per_m", "total_pa", "error",
}

// ReadXLSX parses duct rows from the first sheet of a workbook.
func ReadXLSX(r io.Reader) (Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Input{}, calc.Invalid("not a workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Input{}, err
	}
	if len(rows) < 2 {
		return Input{}, calc.Invalid("empty sheet")
	}

	var in Input
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		req, err := parseRow(row)
		if err != nil {
			return Input{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		in.Items = append(in.Items, req)
	}
	return in, nil
}

func parseRow(row []string) (ductulator.Request, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	var req ductulator.Request
	req.Shape = ductulator.Shape(strings.ToLower(cell(0)))

	nums := make([]*float64, 7)
	for _, i := range []int{1, 2, 3, 4, 6} {
		v, err := optFloat(cell(i))
		if err != nil {
			return req, calc.Invalid("column %s: %q is not a number", importHeader[i], cell(i))
		}
		nums[i] = v
	}
	req.FlowLs = nums[1]
	if req.Shape == ductulator.Rectangular {
		req.WidthMM = nums[2]
		req.HeightMM = nums[3]
	} else {
		req.DiameterMM = nums[2]
	}
	req.LengthM = nums[4]
	req.Roughness = ductulator.RoughnessPreset(strings.ToLower(cell(5)))
	req.CustomRoughnessMM = nums[6]
	return req, nil
}

func optFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteXLSX writes the batch result as a single-sheet workbook.
func WriteXLSX(w io.Writer, res Result) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Ductulator"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, item := range res.Items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := exportRow(item)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func exportRow(item Item) []any {
	req := item.Request
	dim := req.DiameterMM
	if req.Shape == ductulator.Rectangular {
		dim = req.WidthMM
	}
	row := []any{string(req.Shape), deref(req.FlowLs), deref(dim), deref(req.HeightMM), deref(req.LengthM), string(req.Roughness)}
	if item.Result == nil {
		row = append(row, "", "", "", "", "", "", "", item.Error)
		return row
	}
	r := item.Result
	return append(row,
		r.AreaM2, r.EquivalentDiameterM*1000, r.VelocityMS, r.ReynoldsNumber, r.FrictionFactor,
		r.PressureGradientPaM, r.TotalPressureLossPa, "",
	)
}

func deref(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
