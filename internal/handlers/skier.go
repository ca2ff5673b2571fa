package handlers

import (
	"net/http"

	"github.com/snowpeak/skistation/internal/models"
)

// POST /skier/add
func (h *Handler) AddSkier(w http.ResponseWriter, r *http.Request) {
	sk := models.NewSkier("", "", models.Date{})
	if !h.decode(w, r, &sk) {
		return
	}
	out, err := h.svc.Skiers.AddSkier(r.Context(), &sk)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// POST /skier/addAndAssign/{numCourse}
func (h *Handler) AddSkierAndAssignToCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := idParam(w, r, "numCourse")
	if !ok {
		return
	}
	sk := models.NewSkier("", "", models.Date{})
	if !h.decode(w, r, &sk) {
		return
	}
	out, err := h.svc.Skiers.AddSkierAndAssignToCourse(r.Context(), &sk, courseID)
	found(h, w, r, out, err)
}

// PUT /skier/assignToSub/{numSkier}/{numSub}
func (h *Handler) AssignSkierToSubscription(w http.ResponseWriter, r *http.Request) {
	skierID, ok := idParam(w, r, "numSkier")
	if !ok {
		return
	}
	subID, ok := idParam(w, r, "numSub")
	if !ok {
		return
	}
	out, err := h.svc.Skiers.AssignSkierToSubscription(r.Context(), skierID, subID)
	found(h, w, r, out, err)
}

// PUT /skier/assignToPiste/{numSkier}/{numPiste}
func (h *Handler) AssignSkierToPiste(w http.ResponseWriter, r *http.Request) {
	skierID, ok := idParam(w, r, "numSkier")
	if !ok {
		return
	}
	pisteID, ok := idParam(w, r, "numPiste")
	if !ok {
		return
	}
	out, err := h.svc.Skiers.AssignSkierToPiste(r.Context(), skierID, pisteID)
	found(h, w, r, out, err)
}

// GET /skier/getSkiersBySubscription?typeSubscription=ANNUAL
func (h *Handler) SkiersBySubscriptionType(w http.ResponseWriter, r *http.Request) {
	t := models.TypeSubscription(r.URL.Query().Get("typeSubscription"))
	if !t.Valid() {
		writeError(w, http.StatusBadRequest, "typeSubscription must be one of ANNUAL, SEMESTRIEL, MONTHLY")
		return
	}
	out, err := h.svc.Skiers.RetrieveSkiersBySubscriptionType(r.Context(), t)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /skier/get/{id}
func (h *Handler) GetSkier(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.Skiers.RetrieveSkier(r.Context(), id)
	found(h, w, r, out, err)
}

// GET /skier/all
func (h *Handler) AllSkiers(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Skiers.RetrieveAllSkiers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// DELETE /skier/delete/{id}
func (h *Handler) DeleteSkier(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Skiers.RemoveSkier(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
