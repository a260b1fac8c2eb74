package pipe

import (
	"math"

	"Handbook/internal/calc"
)

// Size is a nominal pipe size and its internal diameter.
type Size struct {
	Name        string  `json:"name"`
	InternalDia float64 `json:"internal_diameter_m"`
}

var sizes = []Size{
	{"DN15", 0.0138},
	{"DN20", 0.0180},
	{"DN25", 0.0235},
	{"DN32", 0.0300},
	{"DN40", 0.0368},
	{"DN50", 0.0476},
}

func Sizes() []Size {
	return append([]Size(nil), sizes...)
}

func lookupSizes(names []string) ([]Size, error) {
	if len(names) == 0 {
		return Sizes(), nil
	}
	out := make([]Size, 0, len(names))
next:
	for _, n := range names {
		for _, s := range sizes {
			if s.Name == n {
				out = append(out, s)
				continue next
			}
		}
		return nil, calc.Invalid("unknown pipe size %q", n)
	}
	return out, nil
}

// Material selects a pipe wall roughness.
type Material string

const (
	Glass          Material = "glass"
	Stainless      Material = "stainless"
	CopperTypeB    Material = "copper-b"
	Plastic        Material = "pvc-hdpe"
	CommercialStl  Material = "commercial-steel"
	StandardWeight Material = "std-wt-steel"
	GalvanizedIron Material = "galvanized-iron"
	CastIron       Material = "cast-iron"
	CustomMaterial Material = "custom"
)

type roughness struct {
	material Material
	label    string
	mm       float64
}

var materials = []roughness{
	{Glass, "Glass", 0.0003},
	{Stainless, "Stainless", 0.0010},
	{CopperTypeB, "Copper Type B", 0.0015},
	{Plastic, "PVC / HDPE", 0.0050},
	{CommercialStl, "Commercial steel", 0.0260},
	{StandardWeight, "Std wt steel ANSI B36.10", 0.0460},
	{GalvanizedIron, "Galvanized iron", 0.1500},
	{CastIron, "Cast iron", 0.2600},
}

type MaterialInfo struct {
	Material Material `json:"material"`
	Label    string   `json:"label"`
	MM       float64  `json:"mm"`
}

func Materials() []MaterialInfo {
	out := make([]MaterialInfo, len(materials))
	for i, m := range materials {
		out[i] = MaterialInfo{m.material, m.label, m.mm}
	}
	return out
}

// Roughness returns the absolute roughness in mm for a material.
func (m Material) Roughness() (float64, error) {
	for _, r := range materials {
		if r.material == m {
			return r.mm, nil
		}
	}
	return 0, calc.Invalid("unknown pipe material %q", m)
}

// PresetFor returns the material whose roughness equals mm within 1e-6,
// or CustomMaterial.
func PresetFor(mm float64) Material {
	for _, r := range materials {
		if math.Abs(mm-r.mm) <= 1e-6 {
			return r.material
		}
	}
	return CustomMaterial
}
