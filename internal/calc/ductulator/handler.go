package ductulator

import (
	"net/http"

	"Handbook/internal/calc"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	calc.Serve(w, r, Evaluate)
}

func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, Presets())
}
