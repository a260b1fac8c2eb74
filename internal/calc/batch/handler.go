package batch

import (
	"encoding/json"
	"net/http"

	"Handbook/internal/calc"
)

const maxUpload = 10 << 20

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	calc.Serve(w, r, Calculate)
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	in, err := ReadXLSX(file)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	res, err := Calculate(in)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(in)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"ductulator.xlsx\"")
	if err := WriteXLSX(w, res); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}
