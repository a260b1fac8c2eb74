package tables

import (
	"net/http"

	"Handbook/internal/calc"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, List())
}

// Search answers GET /tables/{name}?q=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := Search(mux.Vars(r)["name"], r.URL.Query().Get("q"))
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
