package fanlaws

import (
	"net/http"

	"Handbook/internal/calc"

	"github.com/gorilla/mux"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	Laws.Serve(w, r, mux.Vars(r)["law"])
}

func (h *Handler) Nomenclature(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, Nomenclature())
}
