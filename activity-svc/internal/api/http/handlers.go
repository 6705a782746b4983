package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"lunch-vote/activity-svc/internal/domain"
	"lunch-vote/activity-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Activity service.ActivityInterface
}

func NewHandler(svc service.ActivityInterface) *Handler {
	return &Handler{Activity: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/activity/today", h.getToday).Methods("GET")
	r.HandleFunc("/api/activity/{date}", h.getForDate).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "activity-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	activity, err := h.Activity.Today(r.Context())
	h.respond(w, activity, err)
}

func (h *Handler) getForDate(w http.ResponseWriter, r *http.Request) {
	activity, err := h.Activity.ForDate(r.Context(), mux.Vars(r)["date"])
	h.respond(w, activity, err)
}

func (h *Handler) respond(w http.ResponseWriter, activity *domain.DailyActivity, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, activity)
	case errors.Is(err, service.ErrInvalidDate):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "validation_error", "message": err.Error()})
	default:
		log.Printf("ERROR: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error", "message": "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
