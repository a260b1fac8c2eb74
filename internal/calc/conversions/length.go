package conversions

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"Handbook/internal/calc"
)

const (
	Inch       = "in"
	Millimetre = "mm"
	mmPerInch  = 25.4
)

var (
	mixedFraction = regexp.MustCompile(`^(-?\d+)\s*[- ]\s*(\d+)\s*/\s*(\d+)$`)
	plainFraction = regexp.MustCompile(`^(-?\d+)\s*/\s*(\d+)$`)
	spaces        = regexp.MustCompile(`\s+`)
)

// ParseFraction reads inches written as a decimal, "n/d", or a mixed
// number "w n/d" or "w-n/d". A negative whole part makes the whole value
// negative. The Unicode minus sign is accepted.
func ParseFraction(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "−", "-"))
	s = spaces.ReplaceAllString(s, " ")
	if s == "" {
		return 0, calc.Invalid("empty length")
	}

	if m := mixedFraction.FindStringSubmatch(s); m != nil {
		w, n, d := atof(m[1]), atof(m[2]), atof(m[3])
		if d == 0 {
			return 0, calc.Invalid("zero denominator in %q", s)
		}
		if strings.HasPrefix(m[1], "-") {
			return w - n/d, nil
		}
		return w + n/d, nil
	}
	if m := plainFraction.FindStringSubmatch(s); m != nil {
		n, d := atof(m[1]), atof(m[2])
		if d == 0 {
			return 0, calc.Invalid("zero denominator in %q", s)
		}
		return n / d, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calc.Invalid("not a length: %q", s)
	}
	return v, nil
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// Length is a converted length with the inch value also written to the
// nearest sixteenth.
type Length struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Inches    float64 `json:"inches"`
	Sixteenth string  `json:"sixteenths"`
}

func ConvertLength(text, from, to string) (Length, error) {
	var inches float64
	switch from {
	case Inch:
		v, err := ParseFraction(text)
		if err != nil {
			return Length{}, err
		}
		inches = v
	case Millimetre:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Length{}, calc.Invalid("not a length: %q", text)
		}
		inches = v / mmPerInch
	default:
		return Length{}, calc.Invalid("unknown length unit %q", from)
	}

	return lengthFromInches(inches, to)
}

func lengthFromInches(inches float64, to string) (Length, error) {
	out := Length{Unit: to, Inches: inches, Sixteenth: Sixteenths(inches)}
	switch to {
	case Inch:
		out.Value = inches
	case Millimetre:
		out.Value = inches * mmPerInch
	default:
		return Length{}, calc.Invalid("unknown length unit %q", to)
	}
	return out, nil
}

// Sixteenths formats inches as a whole number and sixteenths, e.g. 3 2/16".
func Sixteenths(inches float64) string {
	n := int(math.Round(inches * 16))
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	whole, rem := n/16, n%16
	if rem == 0 {
		return fmt.Sprintf(`%s%d"`, sign, whole)
	}
	return fmt.Sprintf(`%s%d %d/16"`, sign, whole, rem)
}

type gauge struct {
	name string
	mm   float64
}

var gauges = []gauge{
	{"26 #", 0.5}, {"24 #", 0.6}, {"22 #", 0.8}, {"20 #", 1.0}, {"18 #", 1.2},
	{"16 #", 1.6}, {"14 #", 2.0}, {"12 #", 2.5}, {"10 #", 3.0},
}

type Gauge struct {
	Gauge string  `json:"gauge"`
	MM    float64 `json:"mm"`
}

// GaugeMM returns the galvanised sheet thickness of a gauge; "20", "20#"
// and "20 #" are all accepted.
func GaugeMM(name string) (float64, error) {
	key := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), "#")) + " #"
	for _, g := range gauges {
		if g.name == key {
			return g.mm, nil
		}
	}
	return 0, calc.Invalid("unknown gauge %q", name)
}

func Gauges() []Gauge {
	out := make([]Gauge, len(gauges))
	for i, g := range gauges {
		out[i] = Gauge{g.name, g.mm}
	}
	return out
}

func GaugeNames() []string {
	out := make([]string, len(gauges))
	for i, g := range gauges {
		out[i] = g.name
	}
	return out
}
