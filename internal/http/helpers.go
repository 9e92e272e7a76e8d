package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"kuberax/internal/content"
	"kuberax/internal/core"
	"kuberax/internal/currency"
	"kuberax/internal/ledger"
	"kuberax/internal/profile"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses: validation failures are
// 422, unknown ids 404, malformed input 400, anything else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case isValidationError(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, profile.ErrNotOnboarded):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrMalformedData), errors.Is(err, profile.ErrMalformedData):
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func isValidationError(err error) bool {
	for _, target := range []error{
		core.ErrInvalidAmount,
		core.ErrInvalidType,
		core.ErrEmptyCategory,
		core.ErrEmptySubcategory,
		core.ErrUnknownCategory,
		core.ErrUnknownSubcategory,
		core.ErrEmptyName,
		core.ErrInvalidAge,
		core.ErrInvalidGender,
		core.ErrInvalidCurrency,
		currency.ErrUnsupportedPair,
		content.ErrQuestionOutOfRange,
		content.ErrOptionOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// decodeJSON reads a request body into v. Field-level validation failures
// raised during decoding (a bad amount string) keep their 422 mapping;
// everything else is a plain 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if isValidationError(err) {
			writeError(w, err)
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

// clientIP extracts the caller address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		if idx := strings.IndexByte(ip, ','); idx > 0 {
			return strings.TrimSpace(ip[:idx])
		}
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
