package pipe

import (
	"net/http"

	"Handbook/internal/calc"
)

// Handler serves the chart. A nil Water uses Correlations.
type Handler struct {
	Water PropertySource
}

func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	calc.Serve(w, r, Calculator{Water: h.Water}.Chart)
}

func (h *Handler) Point(w http.ResponseWriter, r *http.Request) {
	calc.Serve(w, r, Calculator{Water: h.Water}.Point)
}

func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, map[string]any{
		"sizes":     Sizes(),
		"materials": Materials(),
	})
}
