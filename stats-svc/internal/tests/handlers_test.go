package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "overcooked-delivery/stats-svc/internal/api/http"
	"overcooked-delivery/stats-svc/internal/domain"
	"overcooked-delivery/stats-svc/internal/mocks"
	"overcooked-delivery/stats-svc/internal/service"
)

func TestGetRestaurantStatsHandler(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(*mocks.StatsInterface)
		wantCode  int
	}{
		{
			name: "default limit",
			path: "/api/restaurants/1/stats",
			setupMock: func(m *mocks.StatsInterface) {
				m.On("RestaurantStats", mock.Anything, 1, service.DefaultLimit).
					Return(&domain.RestaurantStats{RestaurantID: 1, Orders: 2, Revenue: "129.00"}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "explicit limit",
			path: "/api/restaurants/1/stats?limit=3",
			setupMock: func(m *mocks.StatsInterface) {
				m.On("RestaurantStats", mock.Anything, 1, 3).Return(&domain.RestaurantStats{RestaurantID: 1}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid limit",
			path:      "/api/restaurants/1/stats?limit=-2",
			setupMock: func(m *mocks.StatsInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid restaurant",
			path:      "/api/restaurants/abc/stats",
			setupMock: func(m *mocks.StatsInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store failure",
			path: "/api/restaurants/1/stats",
			setupMock: func(m *mocks.StatsInterface) {
				m.On("RestaurantStats", mock.Anything, 1, service.DefaultLimit).Return(nil, errors.New("redis down")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			stats := mocks.NewStatsInterface(t)
			testCase.setupMock(stats)
			router := httpapi.NewRouter(httpapi.NewHandler(stats))

			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestStatsHealth(t *testing.T) {
	router := httpapi.NewRouter(httpapi.NewHandler(mocks.NewStatsInterface(t)))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "stats-svc", body["service"])
}
