package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"tvshows-client/internal/models"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}

// ErrorMessage is a single entry of ErrorResponse
type ErrorMessage struct {
	Message string `json:"message"`
}

// respondData wraps v in the data envelope
func respondData[T any](w http.ResponseWriter, statusCode int, v T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(models.Envelope[T]{Data: v})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: []ErrorMessage{{Message: message}}})
}

// statusFor maps store errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
