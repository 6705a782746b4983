package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lunch-vote/api-gateway/internal/gateway"
	"lunch-vote/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Routing(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantTarget string
	}{
		{name: "standings", method: http.MethodGet, path: "/api/restaurants?page=2", wantTarget: "http://vote-svc/api/restaurants?page=2"},
		{name: "cast vote", method: http.MethodPost, path: "/api/restaurants/3/vote", wantTarget: "http://vote-svc/api/restaurants/3/vote"},
		{name: "history", method: http.MethodGet, path: "/api/restaurants/history?date_after=2024-05-01", wantTarget: "http://vote-svc/api/restaurants/history?date_after=2024-05-01"},
		{name: "login", method: http.MethodPost, path: "/api/auth/login", wantTarget: "http://vote-svc/api/auth/login"},
		{name: "activity today", method: http.MethodGet, path: "/api/activity/today", wantTarget: "http://activity-svc/api/activity/today"},
		{name: "activity by date", method: http.MethodGet, path: "/api/activity/2024-05-10", wantTarget: "http://activity-svc/api/activity/2024-05-10"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{
				VoteSvcURL:     "http://vote-svc",
				ActivitySvcURL: "http://activity-svc/",
			}, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method &&
					req.URL.String() == testCase.wantTarget &&
					req.Header.Get("Authorization") == "Bearer token"
			})).Return(jsonResponse(http.StatusOK, `{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			req.Header.Set("Authorization", "Bearer token")
			rr := httptest.NewRecorder()

			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_RouteHandler_PassesUpstreamStatus(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{VoteSvcURL: "http://vote-svc"}, mockClient)

	body := `{"error":"validation_error","message":"You already voted maximum times allowed for this restaurant today."}`
	mockClient.On("Do", mock.Anything).Return(jsonResponse(http.StatusBadRequest, body), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/1/vote", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, body, rr.Body.String())
}

func TestGateway_RouteHandler_UnknownRoute(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	for _, path := range []string{"/api/unknown", "/", "/api/restaurantsX"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()

		gw.RouteHandler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		VoteSvcURL: "http://invalid",
	}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "bad_gateway")
}

func TestGateway_ProxyRequest_RealUpstream(t *testing.T) {
	var gotPath, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusCreated)
	}))
	defer upstream.Close()

	gw := gateway.NewGateway(gateway.Config{VoteSvcURL: upstream.URL}, upstream.Client())

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants", strings.NewReader(`{"title":"A","address":"B"}`))
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/restaurants", gotPath)
	assert.Equal(t, `{"title":"A","address":"B"}`, gotBody)
}
