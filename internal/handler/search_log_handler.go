package handler

import (
	"net/http"
	"strconv"

	"aisle-finder/internal/model"
	"aisle-finder/internal/service"

	"github.com/rs/zerolog"
)

// SearchLogHandler exposes the search log for analysis.
type SearchLogHandler struct {
	service service.SearchLogService
	logger  zerolog.Logger
}

// NewSearchLogHandler creates a new search log handler.
func NewSearchLogHandler(service service.SearchLogService, logger zerolog.Logger) *SearchLogHandler {
	return &SearchLogHandler{
		service: service,
		logger:  logger.With().Str("handler", "search_log").Logger(),
	}
}

// List handles GET /api/admin/search_logs?limit=&offset=.
func (h *SearchLogHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := intParam(r, "limit")
	if !ok {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid limit parameter", h.logger)
		return
	}

	offset, ok := intParam(r, "offset")
	if !ok {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid offset parameter", h.logger)
		return
	}

	logs, err := h.service.Recent(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// intParam parses an optional integer query parameter; absent means 0.
func intParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
