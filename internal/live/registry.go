package live

import (
	"Handbook/internal/calc"
	"Handbook/internal/calc/conversions"
	"Handbook/internal/calc/ductulator"
	"Handbook/internal/calc/equations"
	"Handbook/internal/calc/fanlaws"
	"Handbook/internal/calc/pipe"
	"Handbook/internal/calc/power"
	"Handbook/internal/calc/pressure"
	"Handbook/internal/calc/psychro"
	"Handbook/internal/filters"
	"Handbook/internal/tables"
)

type tableQuery struct {
	Name  string `json:"name"`
	Query string `json:"q"`
}

// Calculators registers every calculator under "<group>.<name>", plus
// "ductulator" itself, table search and, when catalog is non-nil, the filter
// search.
func Calculators(catalog *filters.Catalog) calc.Registry {
	reg := calc.Registry{
		"ductulator":    calc.Bind(ductulator.Evaluate),
		"pipe.chart":    calc.Bind(pipe.Chart),
		"pipe.point":    calc.Bind(pipe.Point),
		"psychro.state": calc.Bind(psychro.EvalState),
		"tables.search": calc.Bind(func(q tableQuery) (tables.SearchResult, error) {
			return tables.Search(q.Name, q.Query)
		}),
	}
	if catalog != nil {
		reg["filters.search"] = calc.Bind(catalog.Search)
	}
	for group, r := range map[string]calc.Registry{
		"fanlaws":   fanlaws.Laws,
		"equations": equations.Equations,
		"pressure":  pressure.Equations,
		"power":     power.Equations,
		"convert":   conversions.Quantities,
	} {
		for name, fn := range r {
			reg[group+"."+name] = fn
		}
	}
	return reg
}
