package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snowpeak/skistation/internal/models"
)

// POST /subscription/add
func (h *Handler) AddSubscription(w http.ResponseWriter, r *http.Request) {
	var sub models.Subscription
	if !h.decode(w, r, &sub) {
		return
	}
	out, err := h.svc.Subscriptions.AddSubscription(r.Context(), &sub)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// PUT /subscription/update
func (h *Handler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	var sub models.Subscription
	if !h.decode(w, r, &sub) {
		return
	}
	out, err := h.svc.Subscriptions.UpdateSubscription(r.Context(), &sub)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /subscription/get/{id}
func (h *Handler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.Subscriptions.RetrieveSubscriptionByID(r.Context(), id)
	found(h, w, r, out, err)
}

// GET /subscription/all/{typeSub}
func (h *Handler) SubscriptionsByType(w http.ResponseWriter, r *http.Request) {
	t := models.TypeSubscription(chi.URLParam(r, "typeSub"))
	if !t.Valid() {
		writeError(w, http.StatusBadRequest, "typeSub must be one of ANNUAL, SEMESTRIEL, MONTHLY")
		return
	}
	out, err := h.svc.Subscriptions.GetSubscriptionByType(r.Context(), t)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /subscription/all/{date1}/{date2}
func (h *Handler) SubscriptionsByDates(w http.ResponseWriter, r *http.Request) {
	from, ok := dateParam(w, r, "date1")
	if !ok {
		return
	}
	to, ok := dateParam(w, r, "date2")
	if !ok {
		return
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "date2 cannot be before date1")
		return
	}
	out, err := h.svc.Subscriptions.RetrieveSubscriptionsByDates(r.Context(), from, to)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /subscription/revenue
func (h *Handler) RecurringRevenue(w http.ResponseWriter, r *http.Request) {
	mrr, err := h.svc.Subscriptions.MonthlyRecurringRevenue(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"monthlyRecurringRevenue": mrr})
}
