// Package filters holds the air filter performance catalogue and the
// nearest-size search over it.
package filters

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
)

// Dims is a filter size H×W×D in mm.
type Dims struct {
	H float64 `json:"h"`
	W float64 `json:"w"`
	D float64 `json:"d"`
}

func (d Dims) String() string {
	return fmt.Sprintf("%d×%d×%d", int(math.Round(d.H)), int(math.Round(d.W)), int(math.Round(d.D)))
}

type Product struct {
	Code           string  `json:"product_code"`
	Nominal        Dims    `json:"nominal"`
	Actual         Dims    `json:"actual"`
	AirflowLs      float64 `json:"airflow_ls"`
	InitialResPa   float64 `json:"initial_resistance_pa"`
	Classification string  `json:"classification"`
}

var number = regexp.MustCompile(`[-+]?\d*\.?\d+`)

// ParseTriplet reads the first three numbers of a size such as
// "592 x 592 x 47". ok is false when fewer than three are present.
func ParseTriplet(s string) (d Dims, ok bool) {
	nums := number.FindAllString(s, 3)
	if len(nums) < 3 {
		return Dims{}, false
	}
	var v [3]float64
	for i, n := range nums {
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return Dims{}, false
		}
		v[i] = f
	}
	return Dims{H: v[0], W: v[1], D: v[2]}, true
}

// Catalog is loaded once at startup and never modified.
type Catalog struct {
	products []Product
}

func NewCatalog(products []Product) *Catalog {
	return &Catalog{products: append([]Product(nil), products...)}
}

func (c *Catalog) Len() int { return len(c.products) }

func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Classes returns the distinct classifications, sorted.
func (c *Catalog) Classes() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range c.products {
		if p.Classification != "" && !seen[p.Classification] {
			seen[p.Classification] = true
			out = append(out, p.Classification)
		}
	}
	sort.Strings(out)
	return out
}
