package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/logger"
)

var (
	errInvalidBody  = errors.New("invalid request body")
	errInvalidYear  = errors.New("year must be an integer")
	errInvalidQuery = errors.New("include_open must be a boolean")
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errInvalidYear),
		errors.Is(err, errInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrScooterNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateScooter),
		errors.Is(err, domain.ErrDuplicateRental),
		errors.Is(err, domain.ErrRentalEnded),
		errors.Is(err, domain.ErrScooterAlreadyRented):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidEndTime),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrMissingEndTime):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "request_id", RequestIDFromContext(r.Context()), "error", err)
		msg = http.StatusText(status)
	}
	writeJSONError(w, r, status, msg)
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestIDFromContext(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}
