package service

import (
	"context"
	"fmt"

	"aisle-finder/internal/config"
	"aisle-finder/internal/model"
	"aisle-finder/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// inventoryService implements InventoryService.
type inventoryService struct {
	productRepo repository.ProductRepository
	policy      string
	defaults    model.InventoryDefaults
	logger      zerolog.Logger
}

// NewInventoryService creates a new inventory service applying the given default policy
// (config.InventoryPolicyFalsy or config.InventoryPolicyMissing).
func NewInventoryService(productRepo repository.ProductRepository, policy string, logger zerolog.Logger) InventoryService {
	return &inventoryService{
		productRepo: productRepo,
		policy:      policy,
		defaults:    model.DefaultInventory(),
		logger:      logger.With().Str("service", "inventory").Logger(),
	}
}

// GetInventory resolves the inventory view of a product.
func (s *inventoryService) GetInventory(ctx context.Context, id int64) (*model.Inventory, error) {
	rec, err := s.productRepo.GetInventory(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get inventory")
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	if rec == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	inv := &model.Inventory{
		ID:          rec.ID,
		Name:        rec.Name,
		LastUpdated: rec.UpdatedAt,
	}

	inv.StockQuantity = s.resolveInt(inv, "stock_quantity", rec.StockQuantity, s.defaults.StockQuantity)
	inv.RecentSales = s.resolveInt(inv, "recent_sales", rec.RecentSales, s.defaults.RecentSales)
	inv.Revenue = s.resolveDecimal(inv, "revenue", rec.Revenue, s.defaults.Revenue)
	inv.NextShipment = s.resolveInt(inv, "next_shipment", rec.NextShipment, s.defaults.NextShipment)

	if rec.OnPromotion != nil {
		inv.OnPromotion = *rec.OnPromotion
	}
	if rec.PromotionText != nil {
		inv.PromotionText = *rec.PromotionText
	}

	if len(inv.DefaultedFields) > 0 {
		s.logger.Debug().
			Int64("product_id", id).
			Strs("defaulted_fields", inv.DefaultedFields).
			Msg("inventory placeholders applied")
	}

	return inv, nil
}

func (s *inventoryService) resolveInt(inv *model.Inventory, field string, stored *int, def int) int {
	if stored == nil || (s.policy == config.InventoryPolicyFalsy && *stored == 0) {
		inv.DefaultedFields = append(inv.DefaultedFields, field)
		return def
	}
	return *stored
}

func (s *inventoryService) resolveDecimal(inv *model.Inventory, field string, stored decimal.NullDecimal, def decimal.Decimal) decimal.Decimal {
	if !stored.Valid || (s.policy == config.InventoryPolicyFalsy && stored.Decimal.IsZero()) {
		inv.DefaultedFields = append(inv.DefaultedFields, field)
		return def
	}
	return stored.Decimal
}
