package repository

import (
	"context"

	"aisle-finder/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalog data access operations.
type ProductRepository interface {
	// Search returns at most limit products matching the filter, ordered by id.
	Search(ctx context.Context, filter model.SearchFilter, limit int) ([]model.Product, error)

	// Count returns the number of products matching the filter.
	Count(ctx context.Context, filter model.SearchFilter) (int, error)

	// GetInventory retrieves the inventory columns of a product.
	// Returns nil, nil when the product does not exist.
	GetInventory(ctx context.Context, id int64) (*model.InventoryRecord, error)

	// InsertIgnoringConflicts inserts products in one transaction, skipping rows whose
	// JAN code already exists. Returns the number of rows actually inserted.
	InsertIgnoringConflicts(ctx context.Context, products []model.NewProduct) (int, error)
}

// SearchLogRepository defines the interface for the append-only search log.
type SearchLogRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a search log entry within the provided transaction and
	// populates its ID and CreatedAt.
	Create(ctx context.Context, tx pgx.Tx, entry *model.SearchLog) error

	// List returns entries newest first.
	List(ctx context.Context, limit, offset int) ([]model.SearchLog, error)
}
