package handlers

import (
	"net/http"

	"github.com/snowpeak/skistation/internal/services"
)

type capacityVM struct {
	Week    int                       `json:"week"`
	Rows    []services.CourseCapacity `json:"rows"`
	Summary struct {
		Courses    int   `json:"courses"`
		Capacity   int   `json:"capacity"`
		Registered int64 `json:"registered"`
		Full       int   `json:"full"`
	} `json:"summary"`
}

// GET /registration/capacity?week=N
func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	week, ok := weekQuery(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.Registrations.CapacityReport(r.Context(), week)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	vm := capacityVM{Week: week, Rows: rows}
	for _, row := range rows {
		vm.Summary.Capacity += services.MaxPerCourseWeek
		vm.Summary.Registered += row.Registered
		if row.Available == 0 {
			vm.Summary.Full++
		}
	}
	vm.Summary.Courses = len(rows)
	writeJSON(w, http.StatusOK, vm)
}
