package handler

import (
	"net/http"

	"aisle-finder/internal/model"
	"aisle-finder/internal/service"

	"github.com/rs/zerolog"
)

// SearchHandler handles the plain and AI-assisted search endpoints.
type SearchHandler struct {
	search   service.SearchService
	aiSearch service.AISearchService
	logger   zerolog.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(search service.SearchService, aiSearch service.AISearchService, logger zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		search:   search,
		aiSearch: aiSearch,
		logger:   logger.With().Str("handler", "search").Logger(),
	}
}

// Search handles GET /api/search?q=&type=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.search.Search(r.Context(), q.Get("q"), model.ParseSearchMode(q.Get("type")))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AISearch handles GET /api/ai_search?q=.
func (h *SearchHandler) AISearch(w http.ResponseWriter, r *http.Request) {
	result, err := h.aiSearch.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
