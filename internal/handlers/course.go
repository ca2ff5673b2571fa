package handlers

import (
	"net/http"

	"github.com/snowpeak/skistation/internal/models"
)

// POST /course/add
func (h *Handler) AddCourse(w http.ResponseWriter, r *http.Request) {
	var c models.Course
	if !h.decode(w, r, &c) {
		return
	}
	out, err := h.svc.Courses.AddCourse(r.Context(), &c)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// PUT /course/update
func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var c models.Course
	if !h.decode(w, r, &c) {
		return
	}
	out, err := h.svc.Courses.UpdateCourse(r.Context(), &c)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /course/get/{id}
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.Courses.RetrieveCourse(r.Context(), id)
	found(h, w, r, out, err)
}

// GET /course/all
func (h *Handler) AllCourses(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Courses.RetrieveAllCourses(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// DELETE /course/delete/{id}
func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Courses.RemoveCourse(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
