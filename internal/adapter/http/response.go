package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"crowdfund-escrow/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

// statusFor maps a domain error to its HTTP status.
func statusFor(e *domain.Error) int {
	switch e {
	case domain.ErrUnauthorized:
		return http.StatusForbidden
	case domain.ErrCampaignNotFound:
		return http.StatusNotFound
	case domain.ErrInvalidAmount, domain.ErrInvalidGoal, domain.ErrNameTooLong, domain.ErrDescriptionTooLong:
		return http.StatusBadRequest
	case domain.ErrOverflow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusConflict
	}
}

// fail writes err. Domain errors are reported with their code; anything
// else is logged and hidden behind a 500.
func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		writeError(w, statusFor(de), de.Code, de.Message)
		return
	}
	h.logger.Error(op+" error", slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, "internal_error", "")
}

// decode reads a single JSON object into v and validates it. An empty
// body decodes as an empty object.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON")
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_request", "unexpected data after JSON object")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	return true
}
