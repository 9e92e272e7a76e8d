package http

import (
	"errors"
	"log/slog"
	"net/http"

	"kuberax/internal/chat"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// handleChat proxies a single user message to the assistant. Upstream
// failures degrade to the canned apology instead of an error status.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if s.responder == nil {
		writeJSON(w, http.StatusOK, chatResponse{Reply: chat.FallbackReply})
		return
	}

	reply, err := s.responder.Reply(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
		slog.ErrorContext(r.Context(), "Assistant request failed", "error", err)
		writeJSON(w, http.StatusOK, chatResponse{Reply: chat.FallbackReply})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
