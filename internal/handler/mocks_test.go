package handler

import (
	"context"

	"aisle-finder/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockSearchService is a mock implementation of SearchService.
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query string, mode model.SearchMode) (*model.SearchResult, error) {
	args := m.Called(ctx, query, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchResult), args.Error(1)
}

// MockAISearchService is a mock implementation of AISearchService.
type MockAISearchService struct {
	mock.Mock
}

func (m *MockAISearchService) Search(ctx context.Context, query string) (*model.AISearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AISearchResult), args.Error(1)
}

// MockInventoryService is a mock implementation of InventoryService.
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetInventory(ctx context.Context, id int64) (*model.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inventory), args.Error(1)
}

// MockSearchLogService is a mock implementation of SearchLogService.
type MockSearchLogService struct {
	mock.Mock
}

func (m *MockSearchLogService) Recent(ctx context.Context, limit, offset int) ([]model.SearchLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchLog), args.Error(1)
}
