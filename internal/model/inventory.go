package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord is the raw inventory state of a product. Nil fields were never recorded.
type InventoryRecord struct {
	ID            int64
	Name          string
	StockQuantity *int
	RecentSales   *int
	Revenue       decimal.NullDecimal
	NextShipment  *int
	OnPromotion   *bool
	PromotionText *string
	UpdatedAt     time.Time
}

// Inventory is the resolved inventory view returned to clients.
type Inventory struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	StockQuantity   int             `json:"stock_quantity"`
	RecentSales     int             `json:"recent_sales"`
	Revenue         decimal.Decimal `json:"revenue"`
	NextShipment    int             `json:"next_shipment"`
	LastUpdated     time.Time       `json:"last_updated"`
	OnPromotion     bool            `json:"on_promotion"`
	PromotionText   string          `json:"promotion_text,omitempty"`
	DefaultedFields []string        `json:"defaulted_fields,omitempty"`
}

// InventoryDefaults are the placeholder values shown when a field has no usable stored value.
type InventoryDefaults struct {
	StockQuantity int
	RecentSales   int
	Revenue       decimal.Decimal
	NextShipment  int
}

// DefaultInventory returns the placeholder values used by the store front.
func DefaultInventory() InventoryDefaults {
	return InventoryDefaults{
		StockQuantity: 50,
		RecentSales:   30,
		Revenue:       decimal.NewFromInt(15000),
		NextShipment:  100,
	}
}
