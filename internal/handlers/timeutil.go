package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/snowpeak/skistation/internal/models"
)

// ISO date path parameter, e.g. "2024-01-31"
func dateParam(w http.ResponseWriter, r *http.Request, name string) (models.Date, bool) {
	d, err := models.ParseDate(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", name, err))
		return models.Date{}, false
	}
	return d, true
}

// Week number query parameter, 1..53.
func weekQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("week")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 53 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("week must be a number between 1 and 53, got %q", raw))
		return 0, false
	}
	return n, true
}
