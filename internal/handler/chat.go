package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pharmacie-tassigny/site/backend/internal/chat"
	"github.com/pharmacie-tassigny/site/backend/internal/domain"
)

const (
	msgMessagesRequired = "Messages requis"
	msgAssistantFailure = "Erreur lors de la communication avec l'assistant"
)

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []domain.ChatMessage `json:"messages" validate:"dive"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if len(req.Messages) == 0 {
		h.errorResponse(w, r, http.StatusBadRequest, msgMessagesRequired)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	reply, err := h.relay.Reply(r.Context(), req.Messages)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrNoMessages):
			h.errorResponse(w, r, http.StatusBadRequest, msgMessagesRequired)
		case errors.Is(err, chat.ErrUpstream):
			// the upstream error text stays in the server log
			slog.Error("chat relay failed", "error", err)
			h.errorResponse(w, r, http.StatusInternalServerError, msgAssistantFailure)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"reply": reply})
}
