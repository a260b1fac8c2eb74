package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"Handbook/internal/calc"
	"Handbook/internal/calc/ductulator"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string             `json:"project"`
	Author  string             `json:"author"`
	Title   string             `json:"title"`
	Notes   string             `json:"notes"`
	Duct    ductulator.Request `json:"duct"`
}

// Document is a rendered report and the calculation it was built from.
type Document struct {
	ID     string
	Date   time.Time
	Input  Input
	Duct   ductulator.Input
	Result ductulator.Result
}

// Build runs the calculation and fills in report metadata.
func Build(in Input, now time.Time) (Document, error) {
	duct, err := in.Duct.Input()
	if err != nil {
		return Document{}, err
	}
	res, err := ductulator.Calculate(duct)
	if err != nil {
		return Document{}, err
	}
	if in.Title == "" {
		in.Title = "Ductulator Report"
	}
	return Document{ID: uuid.NewString(), Date: now, Input: in, Duct: duct, Result: res}, nil
}

// Render writes doc as an A4 PDF.
func Render(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(doc.Input.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Project: %s", doc.Input.Project),
		fmt.Sprintf("Author: %s", doc.Input.Author),
		fmt.Sprintf("Date: %s", doc.Date.Format("2006-01-02")),
		fmt.Sprintf("Report: %s", doc.ID),
	} {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section(pdf, tr, "Inputs", inputRows(doc.Duct, doc.Result.RoughnessM))
	section(pdf, tr, "Results", resultRows(doc.Result))

	if doc.Input.Notes != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(doc.Input.Notes), "", "L", false)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr(doc.Result.Notes), "", "L", false)

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(80, 6, tr(r[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 6, tr(r[1]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func inputRows(in ductulator.Input, epsM float64) [][2]string {
	size := fmt.Sprintf("Ø %.0f mm", in.Section.PrimaryMM)
	if in.Section.Shape == ductulator.Rectangular {
		size = fmt.Sprintf("%.0f × %.0f mm", in.Section.PrimaryMM, in.Section.SecondaryMM)
	}
	return [][2]string{
		{"Flow", fmt.Sprintf("%.1f L/s", in.FlowLs)},
		{"Shape & size", size},
		{"Length", fmt.Sprintf("%.2f m", in.LengthM)},
		{"Roughness", fmt.Sprintf("%.3f mm (%s)", epsM*1000, in.Roughness.Label())},
		{"Air density", fmt.Sprintf("%.3f kg/m³", in.Fluid.Density)},
		{"Viscosity", fmt.Sprintf("%g Pa·s", in.Fluid.Viscosity)},
	}
}

func resultRows(r ductulator.Result) [][2]string {
	return [][2]string{
		{"Area", fmt.Sprintf("%.4f m²", r.AreaM2)},
		{"Equivalent diameter", fmt.Sprintf("%.1f mm", r.EquivalentDiameterM*1000)},
		{"Velocity", fmt.Sprintf("%.3f m/s", r.VelocityMS)},
		{"Reynolds number", fmt.Sprintf("%.0f", r.ReynoldsNumber)},
		{"Friction factor", fmt.Sprintf("%.5f", r.FrictionFactor)},
		{"Velocity pressure", fmt.Sprintf("%.2f Pa", r.VelocityPressurePa)},
		{"Friction rate", fmt.Sprintf("%.3f Pa/m", r.PressureGradientPaM)},
		{"Total straight loss", fmt.Sprintf("%.2f Pa", r.TotalPressureLossPa)},
	}
}

type Handler struct {
	Now func() time.Time
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	doc, err := Build(input, now())
	if err != nil {
		calc.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"ductulator-%s.pdf\"", doc.ID[:8]))
	w.Write(buf.Bytes())
}
