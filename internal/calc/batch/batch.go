// Package batch runs the ductulator over many duct runs at once and moves
// them in and out of spreadsheets.
package batch

import (
	"Handbook/internal/calc"
	"Handbook/internal/calc/ductulator"
)

const MaxItems = 500

type Input struct {
	Items []ductulator.Request `json:"items"`
}

type Item struct {
	Index   int                `json:"index"`
	Request ductulator.Request `json:"request"`
	Result  *ductulator.Result `json:"result,omitempty"`
	Error   string             `json:"error,omitempty"`
}

type Result struct {
	Count  int    `json:"count"`
	Failed int    `json:"failed"`
	Items  []Item `json:"items"`
}

// Calculate evaluates every item. A bad item is reported in place and does
// not stop the others.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, calc.Invalid("no items")
	}
	if len(in.Items) > MaxItems {
		return Result{}, calc.Invalid("too many items: %d (max %d)", len(in.Items), MaxItems)
	}
	out := Result{Items: make([]Item, 0, len(in.Items))}
	for i, req := range in.Items {
		item := Item{Index: i, Request: req}
		res, err := ductulator.Evaluate(req)
		if err != nil {
			item.Error = err.Error()
			out.Failed++
		} else {
			item.Result = &res
			out.Count++
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}
