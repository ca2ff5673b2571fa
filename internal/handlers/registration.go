package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snowpeak/skistation/internal/models"
)

// PUT /registration/addAndAssignToSkierAndCourse/{numSkier}/{numCourse}
func (h *Handler) AddRegistrationAndAssignToSkierAndCourse(w http.ResponseWriter, r *http.Request) {
	skierID, ok := idParam(w, r, "numSkier")
	if !ok {
		return
	}
	courseID, ok := idParam(w, r, "numCourse")
	if !ok {
		return
	}
	var reg models.Registration
	if !h.decode(w, r, &reg) {
		return
	}
	out, err := h.svc.Registrations.AddRegistrationAndAssignToSkierAndCourse(r.Context(), &reg, skierID, courseID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// PUT /registration/addAndAssignToSkier/{numSkier}
func (h *Handler) AddRegistrationAndAssignToSkier(w http.ResponseWriter, r *http.Request) {
	skierID, ok := idParam(w, r, "numSkier")
	if !ok {
		return
	}
	var reg models.Registration
	if !h.decode(w, r, &reg) {
		return
	}
	out, err := h.svc.Registrations.AddRegistrationAndAssignToSkier(r.Context(), &reg, skierID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// PUT /registration/assignToCourse/{numRegistration}/{numCourse}
func (h *Handler) AssignRegistrationToCourse(w http.ResponseWriter, r *http.Request) {
	regID, ok := idParam(w, r, "numRegistration")
	if !ok {
		return
	}
	courseID, ok := idParam(w, r, "numCourse")
	if !ok {
		return
	}
	out, err := h.svc.Registrations.AssignRegistrationToCourse(r.Context(), regID, courseID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /registration/numWeeks/{numInstructor}/{support}
func (h *Handler) NumWeeksCourseOfInstructorBySupport(w http.ResponseWriter, r *http.Request) {
	instructorID, ok := idParam(w, r, "numInstructor")
	if !ok {
		return
	}
	support := models.Support(chi.URLParam(r, "support"))
	if !support.Valid() {
		writeError(w, http.StatusBadRequest, "support must be SKI or SNOWBOARD")
		return
	}
	weeks, err := h.svc.Registrations.NumWeeksCourseOfInstructorBySupport(r.Context(), instructorID, support)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if weeks == nil {
		h.fail(w, r, errNotFound)
		return
	}
	writeJSON(w, http.StatusOK, weeks)
}

// GET /registration/get/{id}
func (h *Handler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.Registrations.RetrieveRegistration(r.Context(), id)
	found(h, w, r, out, err)
}

// GET /registration/code/{code}
func (h *Handler) GetRegistrationByCode(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Registrations.RetrieveRegistrationByCode(r.Context(), chi.URLParam(r, "code"))
	found(h, w, r, out, err)
}
