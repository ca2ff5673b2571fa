package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
)

// GET /registration/qr/{code}.png
func (h *Handler) QR(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		http.NotFound(w, r)
		return
	}
	// ensure code exists
	reg, err := h.svc.Registrations.RetrieveRegistrationByCode(r.Context(), code)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if reg == nil {
		http.NotFound(w, r)
		return
	}

	// Encode the lookup URL so scanning opens the registration directly
	url := h.publicURL + "/registration/code/" + code

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
