package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aisle-finder/internal/handler"
	"aisle-finder/internal/metrics"
	"aisle-finder/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearch struct{}

func (stubSearch) Search(context.Context, string, model.SearchMode) (*model.SearchResult, error) {
	return &model.SearchResult{Products: []model.Product{}}, nil
}

type stubAISearch struct{}

func (stubAISearch) Search(_ context.Context, q string) (*model.AISearchResult, error) {
	if q == "" {
		return nil, model.ErrQueryRequired
	}
	return &model.AISearchResult{Products: []model.ProductSummary{}, Analysis: model.FallbackAnalysis(q)}, nil
}

type stubInventory struct{}

func (stubInventory) GetInventory(_ context.Context, id int64) (*model.Inventory, error) {
	if id != 1 {
		return nil, model.ErrProductNotFound
	}
	return &model.Inventory{ID: 1, Name: "牛乳"}, nil
}

type stubSearchLog struct{}

func (stubSearchLog) Recent(context.Context, int, int) ([]model.SearchLog, error) {
	return []model.SearchLog{}, nil
}

func newTestRouter(adminKey string) http.Handler {
	logger := zerolog.Nop()
	h := Handlers{
		Search:    handler.NewSearchHandler(stubSearch{}, stubAISearch{}, logger),
		Inventory: handler.NewInventoryHandler(stubInventory{}, logger),
		SearchLog: handler.NewSearchLogHandler(stubSearchLog{}, logger),
	}
	return New(h, metrics.New(), adminKey, logger)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter("secret")

	tests := []struct {
		name           string
		method         string
		path           string
		apiKey         string
		expectedStatus int
	}{
		{name: "Health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "Metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "Search", method: http.MethodGet, path: "/api/search?q=milk", expectedStatus: http.StatusOK},
		{name: "AI search", method: http.MethodGet, path: "/api/ai_search?q=milk", expectedStatus: http.StatusOK},
		{name: "AI search without query", method: http.MethodGet, path: "/api/ai_search", expectedStatus: http.StatusBadRequest},
		{name: "Inventory", method: http.MethodGet, path: "/api/product/1/inventory", expectedStatus: http.StatusOK},
		{name: "Inventory unknown id", method: http.MethodGet, path: "/api/product/2/inventory", expectedStatus: http.StatusNotFound},
		{name: "Inventory non-numeric id", method: http.MethodGet, path: "/api/product/abc/inventory", expectedStatus: http.StatusNotFound},
		{name: "Inventory zero id", method: http.MethodGet, path: "/api/product/0/inventory", expectedStatus: http.StatusNotFound},
		{name: "Wrong method", method: http.MethodPost, path: "/api/search", expectedStatus: http.StatusMethodNotAllowed},
		{name: "Preflight", method: http.MethodOptions, path: "/api/search", expectedStatus: http.StatusNoContent},
		{name: "Admin without key", method: http.MethodGet, path: "/api/admin/search_logs", expectedStatus: http.StatusUnauthorized},
		{name: "Admin with key", method: http.MethodGet, path: "/api/admin/search_logs", apiKey: "secret", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_AdminDisabledWithoutKey(t *testing.T) {
	router := newTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/search_logs", nil)
	req.Header.Set("X-API-Key", "anything")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ErrorCarriesCorrelationID(t *testing.T) {
	router := newTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/ai_search?q=", nil)
	req.Header.Set("X-Request-ID", "trace-abc")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeQueryRequired, resp.Error)
	assert.Equal(t, "trace-abc", resp.CorrelationID)
}

func TestRouter_RoutingErrorsAreJSON(t *testing.T) {
	router := newTestRouter("secret")

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Unknown route",
			method:         http.MethodGet,
			path:           "/api/nope",
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeNotFound,
		},
		{
			name:           "Non-numeric product id",
			method:         http.MethodGet,
			path:           "/api/product/abc/inventory",
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeNotFound,
		},
		{
			name:           "Product id zero",
			method:         http.MethodGet,
			path:           "/api/product/0/inventory",
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
		},
		{
			name:           "Wrong method",
			method:         http.MethodPost,
			path:           "/api/search",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethodNotAllowed,
		},
		{
			name:           "Wrong method on admin route",
			method:         http.MethodDelete,
			path:           "/api/admin/search_logs",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("X-Request-ID", "trace-404")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp model.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, "trace-404", resp.CorrelationID)
		})
	}
}
