package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
)

// contactSender is the slice of the email service the handler uses.
type contactSender interface {
	SendContactEmail(name, replyTo, company, message string) error
}

type ContactHandler struct {
	email contactSender
}

func NewContactHandler(email contactSender) *ContactHandler {
	return &ContactHandler{email: email}
}

// Submit relays one contact form submission to the site owner.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	if err := h.email.SendContactEmail(req.Name, req.Email, req.Company, req.Message); err != nil {
		log.Printf("contact relay failure (request %s): %v", r.Header.Get("X-Request-ID"), err)
		writeError(w, http.StatusInternalServerError, "Failed to send message.")
		return
	}

	writeJSON(w, http.StatusOK, models.ContactResponse{Message: "Message sent successfully."})
}
