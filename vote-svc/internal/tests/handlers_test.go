package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "lunch-vote/vote-svc/internal/api/http"
	"lunch-vote/vote-svc/internal/domain"
	"lunch-vote/vote-svc/internal/mocks"
	"lunch-vote/vote-svc/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type handlerMocks struct {
	restaurants *mocks.RestaurantServiceInterface
	votes       *mocks.VoteServiceInterface
	standings   *mocks.StandingsServiceInterface
	auth        *mocks.AuthServiceInterface
}

func newTestRouter(t *testing.T) (http.Handler, *handlerMocks, *httpapi.Handler) {
	m := &handlerMocks{
		restaurants: mocks.NewRestaurantServiceInterface(t),
		votes:       mocks.NewVoteServiceInterface(t),
		standings:   mocks.NewStandingsServiceInterface(t),
		auth:        mocks.NewAuthServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Restaurants: m.restaurants,
		Votes:       m.votes,
		Standings:   m.standings,
		Auth:        m.auth,
		JWTSecret:   testSecret,
		PageSize:    10,
		Location:    time.UTC,
	}
	return httpapi.NewRouter(handler), m, handler
}

func signToken(t *testing.T, secret string, userID int, ttl time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httpapi.ErrorResponse {
	var resp httpapi.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthRequired(t *testing.T) {
	router, _, _ := newTestRouter(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{name: "wrong secret", token: signToken(t, "other-secret", 1, time.Hour)},
		{name: "expired token", token: signToken(t, testSecret, 1, -time.Hour)},
		{name: "zero subject", token: signToken(t, testSecret, 0, time.Hour)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := doRequest(router, "GET", "/api/restaurants", "", testCase.token)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, httpapi.CategoryAccessDenied, decodeError(t, w).Error)
		})
	}
}

func TestHealthCheckIsPublic(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doRequest(router, "GET", "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "vote-svc")
}

func TestCreateRestaurantHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*mocks.RestaurantServiceInterface)
		wantCode     int
		wantCategory string
	}{
		{
			name: "valid request",
			body: `{"title":"Alpha","address":"Main st. 1"}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Restaurant).ID = 1
					}).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			body:         `{invalid}`,
			setupMock:    func(m *mocks.RestaurantServiceInterface) {},
			wantCode:     http.StatusBadRequest,
			wantCategory: httpapi.CategoryValidation,
		},
		{
			name: "missing title",
			body: `{"address":"Main st. 1"}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(service.ErrInvalidRestaurant).Once()
			},
			wantCode:     http.StatusBadRequest,
			wantCategory: httpapi.CategoryValidation,
		},
		{
			name: "duplicate",
			body: `{"title":"Alpha","address":"Main st. 1"}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(service.ErrDuplicateRestaurant).Once()
			},
			wantCode:     http.StatusBadRequest,
			wantCategory: httpapi.CategoryValidation,
		},
		{
			name: "database error",
			body: `{"title":"Alpha","address":"Main st. 1"}`,
			setupMock: func(m *mocks.RestaurantServiceInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantCode:     http.StatusInternalServerError,
			wantCategory: httpapi.CategoryInternal,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m, _ := newTestRouter(t)
			testCase.setupMock(m.restaurants)

			w := doRequest(router, "POST", "/api/restaurants", testCase.body, signToken(t, testSecret, 1, time.Hour))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCategory != "" {
				assert.Equal(t, testCase.wantCategory, decodeError(t, w).Error)
			} else {
				var rest domain.Restaurant
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rest))
				assert.Equal(t, 1, rest.ID)
				assert.Equal(t, "Alpha", rest.Title)
			}
		})
	}
}

func TestUpdateRestaurantHandler(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		mockError error
		wantCode  int
	}{
		{name: "updated", path: "/api/restaurants/1", wantCode: http.StatusOK},
		{name: "not found", path: "/api/restaurants/999", mockError: service.ErrRestaurantNotFound, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m, _ := newTestRouter(t)
			m.restaurants.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Restaurant) bool {
				return r.Title == "Beta"
			})).Return(testCase.mockError).Once()

			w := doRequest(router, "PUT", testCase.path, `{"title":"Beta","address":"Side st. 2"}`, signToken(t, testSecret, 1, time.Hour))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestDeleteRestaurantHandler(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		mockError error
		wantCode  int
	}{
		{name: "deleted", id: 1, wantCode: http.StatusNoContent},
		{name: "not found", id: 999, mockError: service.ErrRestaurantNotFound, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m, _ := newTestRouter(t)
			m.restaurants.On("Delete", mock.Anything, testCase.id).Return(testCase.mockError).Once()

			w := doRequest(router, "DELETE", fmt.Sprintf("/api/restaurants/%d", testCase.id), "", signToken(t, testSecret, 1, time.Hour))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCastVoteHandler(t *testing.T) {
	tests := []struct {
		name      string
		mockVote  *domain.Vote
		mockError error
		wantCode  int
		wantMsg   string
	}{
		{
			name:     "first vote",
			mockVote: &domain.Vote{ID: 1, UserID: 7, RestaurantID: 3, VoteWeight: 1.0},
			wantCode: http.StatusCreated,
		},
		{
			name:      "cap reached",
			mockError: service.ErrVoteLimitReached,
			wantCode:  http.StatusBadRequest,
			wantMsg:   "You already voted maximum times allowed for this restaurant today.",
		},
		{
			name:      "unknown restaurant",
			mockError: service.ErrRestaurantNotFound,
			wantCode:  http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m, _ := newTestRouter(t)
			m.votes.On("Cast", mock.Anything, 7, 3).Return(testCase.mockVote, testCase.mockError).Once()

			w := doRequest(router, "POST", "/api/restaurants/3/vote", "", signToken(t, testSecret, 7, time.Hour))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantMsg != "" {
				assert.Equal(t, testCase.wantMsg, decodeError(t, w).Message)
			}
			if testCase.mockVote != nil {
				var vote domain.Vote
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vote))
				assert.Equal(t, 1.0, vote.VoteWeight)
			}
		})
	}
}

func TestCastVoteHandler_RateLimited(t *testing.T) {
	router, m, handler := newTestRouter(t)
	handler.VoteLimiter = httpapi.NewUserRateLimiter(0.001, 1)
	router = httpapi.NewRouter(handler)

	m.votes.On("Cast", mock.Anything, 7, 3).Return(&domain.Vote{ID: 1}, nil).Once()
	token := signToken(t, testSecret, 7, time.Hour)

	first := doRequest(router, "POST", "/api/restaurants/3/vote", "", token)
	second := doRequest(router, "POST", "/api/restaurants/3/vote", "", token)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, httpapi.CategoryRateLimited, decodeError(t, second).Error)

	// limits are per user
	m.votes.On("Cast", mock.Anything, 8, 3).Return(&domain.Vote{ID: 2}, nil).Once()
	other := doRequest(router, "POST", "/api/restaurants/3/vote", "", signToken(t, testSecret, 8, time.Hour))
	assert.Equal(t, http.StatusCreated, other.Code)
}

func TestGetStandingsHandler(t *testing.T) {
	router, m, _ := newTestRouter(t)

	count, canVote := 0, true
	m.standings.On("Current", mock.Anything, 7, domain.Page{Number: 2, Size: 10}).Return(&domain.PagedResult[domain.Standing]{
		Count:    11,
		Page:     2,
		PageSize: 10,
		Results: []domain.Standing{{
			ID: 11, Title: "Last", UserVoteCountToday: &count, CanUserVoteToday: &canVote,
			VoteURL: "/api/restaurants/11/vote",
		}},
	}, nil).Once()

	w := doRequest(router, "GET", "/api/restaurants?page=2", "", signToken(t, testSecret, 7, time.Hour))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(11), body["count"])
	result := body["results"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, result["can_user_vote_today"])
	assert.Equal(t, float64(0), result["user_vote_count_today"])
	assert.Equal(t, "/api/restaurants/11/vote", result["vote_url"])
}

func TestGetStandingsHandler_InvalidPage(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, page := range []string{"0", "-1", "abc", "1000000000000000000"} {
		w := doRequest(router, "GET", "/api/restaurants?page="+page, "", signToken(t, testSecret, 7, time.Hour))
		assert.Equal(t, http.StatusBadRequest, w.Code, "page=%s", page)
	}
}

func TestGetHistoryHandler(t *testing.T) {
	after := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 5, 3, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		query      string
		wantFilter domain.VoteFilter
		wantCode   int
	}{
		{name: "no filter", query: "", wantFilter: domain.VoteFilter{}, wantCode: http.StatusOK},
		{
			name:       "date range",
			query:      "?date_after=2024-05-01&date_before=2024-05-03T12:30:00Z",
			wantFilter: domain.VoteFilter{After: &after, Before: &before},
			wantCode:   http.StatusOK,
		},
		{
			name:       "restaurant ids",
			query:      "?restaurants=1,2&restaurants=5",
			wantFilter: domain.VoteFilter{RestaurantIDs: []int{1, 2, 5}},
			wantCode:   http.StatusOK,
		},
		{name: "bad date", query: "?date_after=yesterday", wantCode: http.StatusBadRequest},
		{name: "bad restaurant id", query: "?restaurants=one", wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m, _ := newTestRouter(t)
			if testCase.wantCode == http.StatusOK {
				m.standings.On("History", mock.Anything, mock.MatchedBy(func(f domain.VoteFilter) bool {
					return sameTime(f.After, testCase.wantFilter.After) &&
						sameTime(f.Before, testCase.wantFilter.Before) &&
						assert.ObjectsAreEqual(testCase.wantFilter.RestaurantIDs, f.RestaurantIDs)
				}), domain.Page{Number: 1, Size: 10}).Return(&domain.PagedResult[domain.Standing]{
					Page: 1, PageSize: 10, Results: []domain.Standing{},
				}, nil).Once()
			}

			w := doRequest(router, "GET", "/api/restaurants/history"+testCase.query, "", signToken(t, testSecret, 7, time.Hour))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusBadRequest {
				assert.Equal(t, httpapi.CategoryValidation, decodeError(t, w).Error)
			}
		})
	}
}

func TestGetWinnersHandler(t *testing.T) {
	router, m, _ := newTestRouter(t)

	m.standings.On("Winners", mock.Anything, mock.AnythingOfType("domain.VoteFilter"), domain.Page{Number: 1, Size: 10}).
		Return(&domain.PagedResult[domain.DayStanding]{
			Count:    2,
			Page:     1,
			PageSize: 10,
			Results: []domain.DayStanding{
				{Date: "2024-05-01", RestaurantID: 1, Title: "restaurant1", Rating: 1.7, TotalDistinctUsersVoted: 2},
				{Date: "2024-05-03", RestaurantID: 2, Title: "restaurant2", Rating: 0.8, TotalDistinctUsersVoted: 1},
			},
		}, nil).Once()

	w := doRequest(router, "GET", "/api/restaurants/winners", "", signToken(t, testSecret, 7, time.Hour))

	require.Equal(t, http.StatusOK, w.Code)
	var body domain.PagedResult[domain.DayStanding]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2024-05-01", body.Results[0].Date)
	assert.Equal(t, 2, body.Results[0].TotalDistinctUsersVoted)
}

func TestGetVoteQRCodeHandler(t *testing.T) {
	router, m, _ := newTestRouter(t)
	m.restaurants.On("VoteQRCode", mock.Anything, 4).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()
	m.restaurants.On("VoteQRCode", mock.Anything, 5).Return(nil, service.ErrRestaurantNotFound).Once()
	token := signToken(t, testSecret, 7, time.Hour)

	w := doRequest(router, "GET", "/api/restaurants/4/vote/qrcode", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = doRequest(router, "GET", "/api/restaurants/5/vote/qrcode", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.AuthServiceInterface)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"username":"alice","password":"pw"}`,
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Register", mock.Anything, "alice", "pw", 0).Return(&domain.User{ID: 1, Username: "alice", DailyVoteCount: 4}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "taken",
			body: `{"username":"alice","password":"pw","daily_vote_count":2}`,
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Register", mock.Anything, "alice", "pw", 2).Return(nil, service.ErrDuplicateUser).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "bad payload",
			body:      `[]`,
			setupMock: func(m *mocks.AuthServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "password too long",
			body: `{"username":"carol","password":"` + strings.Repeat("x", 100) + `"}`,
			setupMock: func(m *mocks.AuthServiceInterface) {
				m.On("Register", mock.Anything, "carol", strings.Repeat("x", 100), 0).Return(nil, service.ErrInvalidUser).Once()
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m, _ := newTestRouter(t)
			testCase.setupMock(m.auth)

			w := doRequest(router, "POST", "/api/auth/register", testCase.body, "")

			assert.Equal(t, testCase.wantCode, w.Code)
			if w.Code == http.StatusCreated {
				assert.NotContains(t, w.Body.String(), "password")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	router, m, _ := newTestRouter(t)
	m.auth.On("Login", mock.Anything, "alice", "pw").Return("signed-token", nil).Once()
	m.auth.On("Login", mock.Anything, "alice", "nope").Return("", service.ErrInvalidCredentials).Once()

	w := doRequest(router, "POST", "/api/auth/login", `{"username":"alice","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"signed-token"}`, w.Body.String())

	w = doRequest(router, "POST", "/api/auth/login", `{"username":"alice","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
