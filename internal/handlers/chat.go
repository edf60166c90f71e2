package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/upstream"
)

type ChatHandler struct {
	responder upstream.Responder
	locale    string
}

func NewChatHandler(responder upstream.Responder, locale string) *ChatHandler {
	return &ChatHandler{responder: responder, locale: locale}
}

// Ask proxies one user message to the configured upstream and returns
// the normalized reply. Validation failures short-circuit before any
// upstream call; upstream failures never surface as raw panics or
// empty 500s.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.responder.Reply(r.Context(), upstream.Turn{
		Message:   req.Message,
		SessionID: req.Sender,
		Locale:    h.locale,
	})
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

func (h *ChatHandler) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("chat upstream failure (request %s): %v", r.Header.Get("X-Request-ID"), err)

	switch e := err.(type) {
	case *upstream.UpstreamError:
		writeError(w, http.StatusInternalServerError, e.Message)
	case *upstream.TransportError:
		writeError(w, http.StatusInternalServerError, "The assistant is unreachable right now")
	case *upstream.ShapeError:
		writeError(w, http.StatusInternalServerError, "The assistant returned an unusable response")
	default:
		writeError(w, http.StatusInternalServerError, "Failed to get a response")
	}
}
