package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/snowpeak/skistation/internal/services"
)

var errNotFound = errors.New("not found")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps a service error to its status code. Unknown errors are logged
// and reported as 500 without their detail.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeError(w, http.StatusBadRequest, validationMessage(verrs))
	case errors.Is(err, errNotFound),
		errors.Is(err, services.ErrSkierNotFound),
		errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrRegistrationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidWeek):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotEligible):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrAlreadyRegistered),
		errors.Is(err, services.ErrCourseFull),
		errors.Is(err, services.ErrSubscriptionTaken):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// found writes v as 200, or 404 when the service had no result.
func found[T any](h *Handler, w http.ResponseWriter, r *http.Request, v *T, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if v == nil {
		h.fail(w, r, errNotFound)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// decode reads a JSON body into dst and validates its struct tags.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.fail(w, r, err)
		return false
	}
	return true
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "invalid payload"
	}
	fe := errs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s fails %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s fails %s", fe.Namespace(), fe.Tag())
}

// idParam parses a numeric path parameter. It writes 400 and returns
// false when the value is not a positive integer.
func idParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
		return 0, false
	}
	return uint(n), true
}
