package handlers

import (
	"net/http"

	"github.com/snowpeak/skistation/internal/models"
)

// POST /piste/add
func (h *Handler) AddPiste(w http.ResponseWriter, r *http.Request) {
	var p models.Piste
	if !h.decode(w, r, &p) {
		return
	}
	out, err := h.svc.Pistes.AddPiste(r.Context(), &p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// PUT /piste/update
func (h *Handler) UpdatePiste(w http.ResponseWriter, r *http.Request) {
	var p models.Piste
	if !h.decode(w, r, &p) {
		return
	}
	out, err := h.svc.Pistes.UpdatePiste(r.Context(), &p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /piste/get/{id}
func (h *Handler) GetPiste(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.Pistes.RetrievePiste(r.Context(), id)
	found(h, w, r, out, err)
}

// GET /piste/all
func (h *Handler) AllPistes(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Pistes.RetrieveAllPistes(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// DELETE /piste/delete/{id}
func (h *Handler) DeletePiste(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Pistes.RemovePiste(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
