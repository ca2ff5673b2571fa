package handlers

import (
	"net/http"

	"github.com/snowpeak/skistation/internal/models"
)

// POST /instructor/add
func (h *Handler) AddInstructor(w http.ResponseWriter, r *http.Request) {
	var in models.Instructor
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.svc.Instructors.AddInstructor(r.Context(), &in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// POST /instructor/addAndAssignToCourse/{numCourse}
func (h *Handler) AddInstructorAndAssignToCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := idParam(w, r, "numCourse")
	if !ok {
		return
	}
	var in models.Instructor
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.svc.Instructors.AddInstructorAndAssignToCourse(r.Context(), &in, courseID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// PUT /instructor/update
func (h *Handler) UpdateInstructor(w http.ResponseWriter, r *http.Request) {
	var in models.Instructor
	if !h.decode(w, r, &in) {
		return
	}
	out, err := h.svc.Instructors.UpdateInstructor(r.Context(), &in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /instructor/get/{id}
func (h *Handler) GetInstructor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.Instructors.RetrieveInstructor(r.Context(), id)
	found(h, w, r, out, err)
}

// GET /instructor/all
func (h *Handler) AllInstructors(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Instructors.RetrieveAllInstructors(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// DELETE /instructor/delete/{id}
func (h *Handler) DeleteInstructor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Instructors.RemoveInstructor(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
