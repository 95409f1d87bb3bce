package router

import (
	"net/http"

	"aisle-finder/internal/handler"
	"aisle-finder/internal/metrics"
	"aisle-finder/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Search    *handler.SearchHandler
	Inventory *handler.InventoryHandler
	SearchLog *handler.SearchLogHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// The admin routes are mounted only when adminAPIKey is non-empty.
func New(h Handlers, m *metrics.Metrics, adminAPIKey string, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Metrics(m))

	// Router-level fallbacks bypass Use, so they carry their own metrics wrapper
	r.NotFoundHandler = middleware.Metrics(m)(handler.NotFound(logger))
	r.MethodNotAllowedHandler = middleware.Metrics(m)(handler.MethodNotAllowed(logger))

	// Health check endpoint (no authentication required)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search", h.Search.Search).Methods(http.MethodGet)
	api.HandleFunc("/ai_search", h.Search.AISearch).Methods(http.MethodGet)
	api.HandleFunc("/product/{id:[0-9]+}/inventory", h.Inventory.Get).Methods(http.MethodGet)

	if adminAPIKey != "" {
		admin := api.PathPrefix("/admin").Subrouter()
		admin.Use(middleware.APIKeyAuth(adminAPIKey, logger))
		admin.HandleFunc("/search_logs", h.SearchLog.List).Methods(http.MethodGet)
	} else {
		logger.Info().Msg("admin API key not set, admin routes disabled")
	}

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS
	var handler http.Handler = r
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
