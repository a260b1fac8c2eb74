package power

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	Equations.Serve(w, r, mux.Vars(r)["eq"])
}
