package handler

import (
	"net/http"
	"strconv"

	"aisle-finder/internal/model"
	"aisle-finder/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// InventoryHandler handles inventory lookups.
type InventoryHandler struct {
	service service.InventoryService
	logger  zerolog.Logger
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(service service.InventoryService, logger zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "inventory").Logger(),
	}
}

// Get handles GET /api/product/{id}/inventory.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	// The route only admits digits, so a parse failure is an id too large to exist.
	// Neither it nor 0 can name a product.
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		writeServiceError(w, r, model.ErrProductNotFound, h.logger)
		return
	}

	inv, err := h.service.GetInventory(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, inv)
}
