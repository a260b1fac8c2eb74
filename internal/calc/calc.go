package calc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"
)

// ErrInvalidInput is wrapped by every validation failure of a calculator.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is returned when a named table, law or unit does not exist.
var ErrNotFound = errors.New("not found")

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Fields collects optional numeric inputs and remembers which ones were absent.
type Fields struct {
	missing []string
	bad     []string
}

// Get returns *v, or 0 if v is nil (recording name as missing).
func (f *Fields) Get(name string, v *float64) float64 {
	if v == nil {
		f.missing = append(f.missing, name)
		return 0
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		f.bad = append(f.bad, name)
		return 0
	}
	return *v
}

// Or returns *v, or def if v is nil.
func (f *Fields) Or(name string, v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return f.Get(name, v)
}

func (f *Fields) Err() error {
	var parts []string
	if len(f.missing) > 0 {
		parts = append(parts, "missing "+strings.Join(f.missing, ", "))
	}
	if len(f.bad) > 0 {
		parts = append(parts, "not a number: "+strings.Join(f.bad, ", "))
	}
	if len(parts) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

// Finite reports an error if any of the named values is NaN or infinite.
func Finite(vals map[string]float64) error {
	for name, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Invalid("%s is not a finite number", name)
		}
	}
	return nil
}

// Serve decodes a JSON body into In, runs fn and writes the JSON result.
func Serve[In, Out any](w http.ResponseWriter, r *http.Request, fn func(In) (Out, error)) {
	var input In
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := fn(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// Encode marshals a result. Results holding NaN or ±Inf, which come from
// finite inputs that overflow, are reported as invalid input.
func Encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	var unsupported *json.UnsupportedValueError
	if errors.As(err, &unsupported) {
		return nil, Invalid("result out of range")
	}
	return b, err
}

// WriteJSON encodes v before writing the status, so an unencodable result
// is reported through WriteError rather than as an empty 200.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	b, err := Encode(v)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(b, '\n'))
}

// WriteError maps calculator errors to HTTP status codes.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "Calculation error", http.StatusInternalServerError)
	}
}

// Evaluator runs one calculator on a raw JSON payload.
type Evaluator func(payload json.RawMessage) (any, error)

// Bind adapts a typed calculator to an Evaluator. Results that cannot be
// encoded, such as an overflow to ±Inf, are returned as errors.
func Bind[In, Out any](fn func(In) (Out, error)) Evaluator {
	return func(payload json.RawMessage) (any, error) {
		var input In
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &input); err != nil {
				return nil, Invalid("payload: %v", err)
			}
		}
		out, err := fn(input)
		if err != nil {
			return nil, err
		}
		if _, err := Encode(out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Registry maps calculator names to evaluators.
type Registry map[string]Evaluator

// Names returns the registered names in sorted order.
func (reg Registry) Names() []string {
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Eval runs the evaluator called name.
func (reg Registry) Eval(name string, payload json.RawMessage) (any, error) {
	fn, ok := reg[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return fn(payload)
}

// Serve decodes the request body and writes the result of the evaluator
// called name.
func (reg Registry) Serve(w http.ResponseWriter, r *http.Request, name string) {
	if _, ok := reg[name]; !ok {
		WriteError(w, fmt.Errorf("%w: %q", ErrNotFound, name))
		return
	}
	var payload json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := reg.Eval(name, payload)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// Symbol is one row of a nomenclature table.
type Symbol struct {
	Symbol  string `json:"symbol"`
	Meaning string `json:"meaning"`
	Units   string `json:"units"`
}

// Value is a single computed quantity.
type Value struct {
	Symbol string  `json:"symbol"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}
