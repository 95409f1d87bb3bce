package service

import (
	"context"

	"aisle-finder/internal/model"
)

// SearchService defines the plain catalog search.
type SearchService interface {
	// Search returns a capped page of products matching query in the given mode,
	// together with the size of the full match set.
	Search(ctx context.Context, query string, mode model.SearchMode) (*model.SearchResult, error)
}

// AISearchService defines the AI-assisted search.
type AISearchService interface {
	// Search analyses the query with the generative model, runs a broad catalog
	// search and records the request in the search log.
	Search(ctx context.Context, query string) (*model.AISearchResult, error)
}

// InventoryService defines inventory lookups.
type InventoryService interface {
	// GetInventory resolves the inventory view of a product, substituting
	// placeholders for unusable stored values.
	GetInventory(ctx context.Context, id int64) (*model.Inventory, error)
}

// SearchLogService defines read access to the search log.
type SearchLogService interface {
	// Recent returns log entries newest first.
	Recent(ctx context.Context, limit, offset int) ([]model.SearchLog, error)
}

// Recorder receives service-level metrics.
type Recorder interface {
	RecordAIOutcome(outcome string)
	RecordSearchLogFailure()
}
