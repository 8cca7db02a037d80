package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/aserravalle/travelling-salesman-backend/internal/api/dto"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

type ContactHandler struct {
	Notifier ports.Notifier
}

// ContactUs forwards a contact form submission to the operators.
func (h *ContactHandler) ContactUs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Notifier == nil {
		writeError(w, r, http.StatusServiceUnavailable, "contact notifications are not configured")
		return
	}

	var req dto.ContactUsRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		writeError(w, r, http.StatusBadRequest, "name, email and message are required")
		return
	}

	msg := ports.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
	}
	if err := h.Notifier.SendContactMessage(r.Context(), msg); err != nil {
		log.Printf("send contact message failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "message sent"})
}
