package seed

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"aisle-finder/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Search(ctx context.Context, filter model.SearchFilter, limit int) ([]model.Product, error) {
	args := m.Called(ctx, filter, limit)
	return nil, args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter model.SearchFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) GetInventory(ctx context.Context, id int64) (*model.InventoryRecord, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockProductRepository) InsertIgnoringConflicts(ctx context.Context, products []model.NewProduct) (int, error) {
	args := m.Called(ctx, products)
	return args.Int(0), args.Error(1)
}

func record(code, name string, aisle int) Record {
	return Record{Code: code, Name: name, Aisle: json.Number(strconv.Itoa(aisle))}
}

func TestImporter_Import_Batches(t *testing.T) {
	ctx := context.Background()

	records := []Record{
		record("4900000000001", "商品1", 1),
		record("4900000000002", "商品2", 2),
		record("4900000000003", "商品3", 3),
		record("4900000000004", "商品4", 4),
		record("4900000000005", "商品5", 5),
	}

	repo := new(MockProductRepository)
	repo.On("InsertIgnoringConflicts", ctx, mock.MatchedBy(func(b []model.NewProduct) bool { return len(b) == 2 })).
		Return(2, nil).Once()
	repo.On("InsertIgnoringConflicts", ctx, mock.MatchedBy(func(b []model.NewProduct) bool { return len(b) == 2 })).
		Return(1, nil).Once()
	repo.On("InsertIgnoringConflicts", ctx, mock.MatchedBy(func(b []model.NewProduct) bool { return len(b) == 1 })).
		Return(0, nil).Once()

	result, err := NewImporter(repo, 2, zerolog.Nop()).Import(ctx, records)
	require.NoError(t, err)

	assert.Equal(t, &Result{Inserted: 3, Skipped: 2, Errors: 0}, result)
	repo.AssertNumberOfCalls(t, "InsertIgnoringConflicts", 3)
	repo.AssertExpectations(t)
}

func TestImporter_Import_InvalidRecordsCounted(t *testing.T) {
	ctx := context.Background()

	records := []Record{
		record("4900000000001", "牛乳", 3),
		record("4900000000002", "", 3),              // name required
		record("49000000000000001", "長すぎるJAN", 3), // JAN longer than 13
		{Code: "4900000000003", Name: "通路なし"},       // aisle missing
		record("4900000000004", "パン", 5),
	}

	repo := new(MockProductRepository)
	repo.On("InsertIgnoringConflicts", ctx, mock.MatchedBy(func(b []model.NewProduct) bool {
		return len(b) == 2 && b[0].Name == "牛乳" && b[1].Name == "パン"
	})).Return(2, nil)

	result, err := NewImporter(repo, 100, zerolog.Nop()).Import(ctx, records)
	require.NoError(t, err)

	assert.Equal(t, &Result{Inserted: 2, Skipped: 0, Errors: 3}, result)
}

func TestImporter_Import_RepositoryError(t *testing.T) {
	ctx := context.Background()

	records := []Record{
		record("4900000000001", "商品1", 1),
		record("4900000000002", "商品2", 2),
		record("4900000000003", "商品3", 3),
	}

	repo := new(MockProductRepository)
	repo.On("InsertIgnoringConflicts", ctx, mock.Anything).Return(2, nil).Once()
	repo.On("InsertIgnoringConflicts", ctx, mock.Anything).Return(0, errors.New("connection lost")).Once()

	result, err := NewImporter(repo, 2, zerolog.Nop()).Import(ctx, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
	assert.Equal(t, 2, result.Inserted)
}

func TestImporter_Import_Empty(t *testing.T) {
	repo := new(MockProductRepository)

	result, err := NewImporter(repo, 100, zerolog.Nop()).Import(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, &Result{}, result)
	repo.AssertNotCalled(t, "InsertIgnoringConflicts", mock.Anything, mock.Anything)
}
