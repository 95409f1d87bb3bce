package service

import (
	"context"

	"aisle-finder/internal/model"
	"aisle-finder/internal/repository"

	"github.com/rs/zerolog"
)

// searchService implements SearchService.
type searchService struct {
	productRepo repository.ProductRepository
	pageSize    int
	logger      zerolog.Logger
}

// NewSearchService creates a new search service returning at most pageSize products per call.
func NewSearchService(productRepo repository.ProductRepository, pageSize int, logger zerolog.Logger) SearchService {
	return &searchService{
		productRepo: productRepo,
		pageSize:    pageSize,
		logger:      logger.With().Str("service", "search").Logger(),
	}
}

// Search returns a capped page of products matching query in the given mode.
func (s *searchService) Search(ctx context.Context, query string, mode model.SearchMode) (*model.SearchResult, error) {
	params := model.SearchParams{Query: NormalizeQuery(query), Mode: mode}
	if err := validate.Struct(params); err != nil {
		s.logger.Debug().Err(err).Int("length", len([]rune(params.Query))).Msg("rejected search query")
		return nil, validationError(err)
	}

	filter := model.SearchFilter{Query: params.Query, Fields: params.Mode.Fields()}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Str("query", params.Query).
			Str("mode", string(params.Mode)).
			Msg("failed to count matching products")
		return nil, model.ErrSearchFailed
	}

	products, err := s.productRepo.Search(ctx, filter, s.pageSize)
	if err != nil {
		s.logger.Error().Err(err).
			Str("query", params.Query).
			Str("mode", string(params.Mode)).
			Msg("failed to search products")
		return nil, model.ErrSearchFailed
	}

	s.logger.Debug().
		Str("query", params.Query).
		Str("mode", string(params.Mode)).
		Int("total_count", total).
		Int("returned", len(products)).
		Msg("search completed")

	return &model.SearchResult{
		TotalCount: total,
		Products:   products,
	}, nil
}
