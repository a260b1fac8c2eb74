package psychro

import (
	"net/http"
	"strconv"

	"Handbook/internal/calc"
)

// Handler serves states and charts. A nil Air uses ASHRAE.
type Handler struct {
	Air PropertySource
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	calc.Serve(w, r, Calculator{Air: h.Air}.EvalState)
}

// Chart accepts optional points and pressure_pa query parameters.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	points, p := 0, StandardPressure
	var err error
	if s := q.Get("points"); s != "" {
		if points, err = strconv.Atoi(s); err != nil {
			http.Error(w, "Invalid points", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("pressure_pa"); s != "" {
		if p, err = strconv.ParseFloat(s, 64); err != nil {
			http.Error(w, "Invalid pressure", http.StatusBadRequest)
			return
		}
	}
	c, err := Calculator{Air: h.Air}.BuildChart(points, p)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, c)
}
