package filters

import (
	"net/http"

	"Handbook/internal/calc"
)

type Handler struct {
	Catalog *Catalog
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	calc.Serve(w, r, h.Catalog.Search)
}

func (h *Handler) Classes(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, h.Catalog.Classes())
}
