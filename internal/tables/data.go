package tables

import (
	"strconv"

	"Handbook/internal/calc"
	"Handbook/internal/calc/conversions"
	"Handbook/internal/calc/equations"
	"Handbook/internal/calc/fanlaws"
)

// CoolingLoad is a check figure in W/m² of air-conditioned floor area. A nil
// load means no figure is published.
type CoolingLoad struct {
	Occupancy string   `json:"occupancy"`
	WPerM2    *float64 `json:"w_per_m2"`
}

func w(v float64) *float64 { return &v }

var coolingLoads = []CoolingLoad{
	{"Apartments, Residence", w(120)},
	{"Auditorium", w(280)},
	{"Banks", w(175)},
	{"Hairdresser", w(215)},
	{"Beauty Shop", w(260)},
	{"Cafeteria", w(350)},
	{"Classroom", w(95)},
	{"Clinic", w(190)},
	{"Clothing Store", w(165)},
	{"Computer Room", w(480)},
	{"Conference Room", w(275)},
	{"Department Store", nil},
	{"Basement", w(125)},
	{"Main Floor", w(150)},
	{"Upper Floors", w(125)},
	{"Factory - Light Manufacture", w(275)},
	{"Factory - Heavy Manufacture", w(490)},
	{"Food Stores", w(160)},
	{"Hotel & Motel Rooms", w(120)},
	{"Laboratory", w(130)},
	{"Library", w(150)},
	{"Mall", w(135)},
	{"Medical Offices", w(185)},
	{"Milk Bars, Fast Food", w(270)},
	{"Office - General (Perimeter)", w(170)},
	{"Office - General (Interior)", w(100)},
	{"Office - Private", w(180)},
	{"Post Office", w(180)},
	{"Restaurants", w(330)},
	{"Shoe Store", w(185)},
	{"Super Market", w(160)},
	{"Theatre", w(280)},
}

func CoolingLoads() []CoolingLoad {
	return append([]CoolingLoad(nil), coolingLoads...)
}

var registry = []Table{
	coolingLoadTable(),
	{
		Name:    "ductwork-abbreviations",
		Title:   "Ductwork Abbreviations",
		Columns: []string{"Category", "Abbrev", "Meaning"},
		Rows: [][]string{
			{"Ductwork", "S.M.", "Site Measure"},
			{"Ductwork", "EXP", "Exposed Duct"},
			{"Ductwork", "T.C.", "To Cut on Site"},
			{"Ductwork", "E.T.", "Equal Taper"},
			{"Ductwork", "F.O.T.", "Flat on Top"},
			{"Ductwork", "F.O.B.", "Flat on Bottom"},
			{"Ductwork", "S.E.", "Stop End"},
			{"Ductwork", "S.U. ▶", "Set Up in Direction of Arrow"},
			{"Ductwork", "S.D. ▶", "Set Down in Direction of Arrow"},
			{"Ductwork", "D.M.", "Duct Mate"},
			{"Ductwork", "S.J.", "Slide Joint"},
			{"Ductwork", "FL", "Flange"},
			{"Ductwork", "L", "Long"},
			{"Air Systems", "S/A", "Supply Air"},
			{"Air Systems", "R/A", "Return Air"},
			{"Air Systems", "O/A", "Outside Air"},
			{"Air Systems", "E/A", "Exhaust Air"},
			{"Air Systems", "REL/A", "Relief Air"},
			{"Air Systems", "S.S.", "Smoke Spill"},
			{"System Dampers", "V.C.D.", "Volume Control Damper"},
			{"System Dampers", "M.V.C.D.", "Motorised Volume Control Damper"},
			{"System Dampers", "O.B.D.", "Opposed Blade Damper"},
			{"System Dampers", "B.D.", "Butterfly Damper"},
			{"System Dampers", "N.R.D.", "Non Return Damper"},
			{"System Dampers", "S.S.D.", "Stream Splitter Damper"},
			{"System Dampers", "F.D.", "Fire Damper"},
			{"System Components", "A.P.", "Access Panel"},
			{"System Components", "A.D.", "Access Door"},
			{"System Components", "D.G.", "Door Grille"},
			{"System Components", "A.H.U.", "Air Handling Unit"},
			{"System Components", "F.C.U.", "Fan Coil Unit"},
			{"System Components", "E.D.H.", "Electrical Duct Heater"},
			{"System Components", "Ⓣ", "Temperature Sensor"},
			{"System Components", "Ⓗ", "Humidity Sensor"},
		},
	},
	{
		Name:    "ductwork-rules",
		Title:   "Ductwork Rules of Thumb",
		Columns: []string{"Item", "Rule / Target"},
		Rows: [][]string{
			{"Ductwork – Supply", "≤ 1.2 Pa/m friction (to a maximum of 7.0 m/s)"},
			{"Ductwork – Return", "≤ 1.2 Pa/m friction (to a maximum of 6.5 m/s)"},
			{"Ductwork – Return (behind R/A grille)", "3.0 m/s (check noise level in manufacturer literature)"},
			{"Ductwork – Exhaust", "6.5 m/s"},
			{"Ductwork – Flexible Supply", "3.5 m/s"},
			{"Neck velocity for supply air register", "2.5 m/s"},
			{"Coil face velocity – Cooling", "2.25 m/s (check pressure in manufacturer literature)"},
			{"Coil face velocity – Heating", "3.5 m/s (check pressure in manufacturer literature)"},
			{"Air filter face velocity", "1.8 – 2.5 m/s (check pressure in manufacturer literature)"},
			{"Louvres face velocity – Outside air intake", "1.8 – 2.0 m/s (max) (check pressure in manufacturer literature)"},
			{"Louvres – Exhaust (velocity through free area)", "2.5 m/s (check pressure in manufacturer literature)"},
			{"Door grille – Face velocity", "1.25 m/s (check noise level in manufacturer literature)"},
			{"Volume control damper (incl. MVCD)", "6.0 – 9.0 m/s"},
			{"Relief air grille – Maximum pressure drop", "15 Pa"},
			{"Straight duct pressure loss (ductulator)", "0.8 – 1.2 Pa/m"},
		},
	},
	{
		Name:    "air-diffusers",
		Title:   "Air Diffusers and Flexible Duct Figures",
		Columns: []string{"Air Quantity (L/s)", "Diffuser Neck Size (mm × mm)", "Flexible Ductwork (Ø mm)"},
		Rows: [][]string{
			{"Up to 50", "150 × 150", "150"},
			{"55 to 80", "150 × 150", "200"},
			{"85 to 110", "225 × 225", "200"},
			{"115 to 150", "225 × 225", "250"},
			{"155 to 170", "300 × 300", "250"},
			{"175 to 250", "300 × 300", "300"},
			{"255 to 340", "375 × 375", "350"},
			{"345 to 440", "450 × 450", "400"},
		},
	},
	symbolTable("equation-abbreviations", "Equation Abbreviations", equations.Abbreviations()),
	symbolTable("fan-nomenclature", "Fan Law Nomenclature", fanlaws.Nomenclature()),
	{
		Name:  "insulation-r-values",
		Title: "Ductwork – Minimum Required Material R-Value",
		Columns: []string{"Code", "Location", "Zone 1", "Zone 2", "Zone 3", "Zone 4",
			"Zone 5", "Zone 6", "Zone 7", "Zone 8"},
		Rows: [][]string{
			{"BCA 2010", "Conditioned Space", "R1.2", "R1.2", "R1.2", "R1.0", "R1.2", "R1.0", "R1.0", "R1.6"},
			{"BCA 2010", "Exposed to Sun", "R3.0", "R3.0", "R3.0", "R3.0", "R3.0", "R3.0", "R3.0", "R3.4"},
			{"BCA 2010", "All other", "R2.0", "R2.0", "R2.0", "R2.0", "R2.0", "R2.0", "R2.0", "R2.4"},
			{"NCC 2011", "Conditioned Space", "R1.2", "R1.2", "R1.2", "R1.2", "R1.2", "R1.2", "R1.2", "R1.6"},
			{"NCC 2011", "Exposed to Sun", "R3.0", "R3.0", "R3.0", "R3.0", "R3.0", "R3.0", "R3.0", "R3.4"},
			{"NCC 2011", "All other", "R2.0", "R2.0", "R2.0", "R2.0", "R2.0", "R2.0", "R2.0", "R2.4"},
		},
		Notes:    "All R-values are material R-values (R_MAT).",
		searchOn: []int{0, 1},
	},
	{
		Name:  "rigid-duct-insulation",
		Title: "Rigid Duct Product Selector",
		Columns: []string{"Target R-Value", "Internal Ductliner", "Thickness", "R_MAT",
			"Ductwrap A", "Thickness", "R_MAT", "Ductwrap B", "Thickness", "R_MAT"},
		Rows: [][]string{
			{"R1.0", "Supertel", "40 mm", "R1.2", "Multitel", "38 mm", "R1.0", "Flexitel", "38 mm", "R1.1"},
			{"R1.2", "Supertel", "40 mm", "R1.2", "Multitel", "50 mm", "R1.3", "Flexitel", "50 mm", "R1.4"},
			{"R1.6", "Supertel", "63 mm", "R1.8", "Multitel", "75 mm", "R2.0", "Flexitel", "75 mm", "R2.1"},
			{"R2.0", "Supertel", "75 mm", "R2.2", "Multitel", "75 mm", "R2.0", "Flexitel", "75 mm", "R2.1"},
			{"R2.4", "Supertel", "100 mm", "R3.0", "Multitel", "2×50 mm", "R2.6", "Flexitel", "2×50 mm", "R2.8"},
			{"R3.0", "Supertel", "100 mm", "R3.0", "", "", "", "", "", ""},
			{"R3.4", "Supertel", "2×63 mm", "R3.6", "", "", "", "", "", ""},
		},
	},
	{
		Name:    "flexible-duct-insulation",
		Title:   "Flexible Duct Product Selector",
		Columns: []string{"Target R-Value", "Product", "Thickness", "R_M"},
		Rows: [][]string{
			{"R1.0", "Specitel", "40mm", "R1.0"},
			{"R1.2", "Specitel", "50mm", "R1.2"},
			{"R1.6", "Specitel", "65mm", "R1.6"},
			{"R2.0", "Building Blanket", "90mm", "R2.0"},
			{"R2.4", "Building Blanket", "110mm", "R2.5"},
		},
	},
	gaugeTable(),
}

func coolingLoadTable() Table {
	t := Table{
		Name:     "cooling-loads",
		Title:    "Cooling Load Check Figures",
		Columns:  []string{"Occupancy", "Cooling Load (W/m²)"},
		Notes:    "W/m² of air-conditioned area.",
		searchOn: []int{0},
	}
	for _, c := range coolingLoads {
		v := "—"
		if c.WPerM2 != nil {
			v = strconv.FormatFloat(*c.WPerM2, 'f', -1, 64)
		}
		t.Rows = append(t.Rows, []string{c.Occupancy, v})
	}
	return t
}

func symbolTable(name, title string, symbols []calc.Symbol) Table {
	t := Table{Name: name, Title: title, Columns: []string{"Symbol", "Meaning", "Units"}}
	for _, s := range symbols {
		t.Rows = append(t.Rows, []string{s.Symbol, s.Meaning, s.Units})
	}
	return t
}

func gaugeTable() Table {
	t := Table{Name: "gauges", Title: "Galvanised Metal Gauge Conversions", Columns: []string{"Imperial", "Metric"}}
	for _, g := range conversions.Gauges() {
		t.Rows = append(t.Rows, []string{g.Gauge, strconv.FormatFloat(g.MM, 'f', -1, 64) + " mm"})
	}
	return t
}
