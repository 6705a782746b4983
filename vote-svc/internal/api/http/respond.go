package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"lunch-vote/vote-svc/internal/service"
)

const (
	CategoryValidation   = "validation_error"
	CategoryNotFound     = "not_found"
	CategoryAccessDenied = "access_denied"
	CategoryConflict     = "conflict"
	CategoryRateLimited  = "rate_limited"
	CategoryInternal     = "internal_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, category, message string) {
	writeJSON(w, status, ErrorResponse{Error: category, Message: message})
}

// writeServiceError maps service sentinel errors to their HTTP shape.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		writeError(w, http.StatusNotFound, CategoryNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidRestaurant),
		errors.Is(err, service.ErrDuplicateRestaurant),
		errors.Is(err, service.ErrVoteLimitReached),
		errors.Is(err, service.ErrInvalidUser):
		writeError(w, http.StatusBadRequest, CategoryValidation, err.Error())
	case errors.Is(err, service.ErrDuplicateUser):
		writeError(w, http.StatusConflict, CategoryConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, CategoryAccessDenied, err.Error())
	default:
		log.Printf("ERROR: %v", err)
		writeError(w, http.StatusInternalServerError, CategoryInternal, "internal server error")
	}
}
