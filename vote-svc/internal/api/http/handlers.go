package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"lunch-vote/vote-svc/internal/domain"
	"lunch-vote/vote-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Votes       service.VoteServiceInterface
	Standings   service.StandingsServiceInterface
	Auth        service.AuthServiceInterface

	JWTSecret   string
	PageSize    int
	Location    *time.Location
	VoteLimiter *UserRateLimiter
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")

	api := r.PathPrefix("/api/restaurants").Subrouter()
	api.Use(JWTAuth(h.JWTSecret))

	api.HandleFunc("", h.createRestaurant).Methods("POST")
	api.HandleFunc("", h.getStandings).Methods("GET")
	api.HandleFunc("/history", h.getHistory).Methods("GET")
	api.HandleFunc("/winners", h.getWinners).Methods("GET")
	api.HandleFunc("/{id:[0-9]+}", h.updateRestaurant).Methods("PUT")
	api.HandleFunc("/{id:[0-9]+}", h.deleteRestaurant).Methods("DELETE")
	api.HandleFunc("/{id:[0-9]+}/vote/qrcode", h.getVoteQRCode).Methods("GET")

	var vote http.Handler = http.HandlerFunc(h.castVote)
	if h.VoteLimiter != nil {
		vote = h.VoteLimiter.Middleware(vote)
	}
	api.Handle("/{id:[0-9]+}/vote", vote).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "vote-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username       string `json:"username"`
		Password       string `json:"password"`
		DailyVoteCount int    `json:"daily_vote_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, CategoryValidation, "invalid payload")
		return
	}

	user, err := h.Auth.Register(r.Context(), payload.Username, payload.Password, payload.DailyVoteCount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, CategoryValidation, "invalid payload")
		return
	}

	token, err := h.Auth.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeError(w, http.StatusBadRequest, CategoryValidation, "invalid payload")
		return
	}
	if err := h.Restaurants.Create(r.Context(), &rest); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeError(w, http.StatusBadRequest, CategoryValidation, "invalid payload")
		return
	}
	rest.ID = id
	if err := h.Restaurants.Update(r.Context(), &rest); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Restaurants.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getStandings(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.PageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, CategoryValidation, err.Error())
		return
	}

	result, err := h.Standings.Current(r.Context(), UserIDFromContext(r.Context()), page)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	filter, page, ok := h.parseListParams(w, r)
	if !ok {
		return
	}

	result, err := h.Standings.History(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getWinners(w http.ResponseWriter, r *http.Request) {
	filter, page, ok := h.parseListParams(w, r)
	if !ok {
		return
	}

	result, err := h.Standings.Winners(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) parseListParams(w http.ResponseWriter, r *http.Request) (domain.VoteFilter, domain.Page, bool) {
	page, err := parsePage(r, h.PageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, CategoryValidation, err.Error())
		return domain.VoteFilter{}, page, false
	}

	loc := h.Location
	if loc == nil {
		loc = time.UTC
	}
	filter, err := parseVoteFilter(r, loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, CategoryValidation, err.Error())
		return filter, page, false
	}
	return filter, page, true
}

func (h *Handler) castVote(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])

	vote, err := h.Votes.Cast(r.Context(), UserIDFromContext(r.Context()), restaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vote)
}

func (h *Handler) getVoteQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qrCode, err := h.Restaurants.VoteQRCode(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
