package conversions

import (
	"net/http"

	"Handbook/internal/calc"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	Quantities.Serve(w, r, mux.Vars(r)["quantity"])
}

func (h *Handler) Units(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, map[string]any{
		"units":  Units(),
		"gauges": Gauges(),
	})
}
