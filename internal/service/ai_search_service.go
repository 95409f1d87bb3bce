package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"aisle-finder/internal/ai"
	"aisle-finder/internal/events"
	"aisle-finder/internal/model"
	"aisle-finder/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// AISearchOptions tune the AI-assisted search.
type AISearchOptions struct {
	// ResultLimit caps the broad catalog search.
	ResultLimit int
	// DegradeOnFailure continues with a degraded analysis when the generative API
	// cannot be reached instead of failing the request.
	DegradeOnFailure bool
}

// aiSearchService implements AISearchService.
type aiSearchService struct {
	productRepo repository.ProductRepository
	logRepo     repository.SearchLogRepository
	analyzer    ai.Analyzer
	publisher   events.Publisher
	recorder    Recorder
	opts        AISearchOptions
	logger      zerolog.Logger
}

// NewAISearchService creates a new AI search service.
func NewAISearchService(
	productRepo repository.ProductRepository,
	logRepo repository.SearchLogRepository,
	analyzer ai.Analyzer,
	publisher events.Publisher,
	recorder Recorder,
	opts AISearchOptions,
	logger zerolog.Logger,
) AISearchService {
	return &aiSearchService{
		productRepo: productRepo,
		logRepo:     logRepo,
		analyzer:    analyzer,
		publisher:   publisher,
		recorder:    recorder,
		opts:        opts,
		logger:      logger.With().Str("service", "ai_search").Logger(),
	}
}

// Search analyses the query, runs a broad catalog search and records the request.
func (s *aiSearchService) Search(ctx context.Context, query string) (*model.AISearchResult, error) {
	params := model.AISearchParams{Query: NormalizeQuery(query)}
	if err := validate.Struct(params); err != nil {
		return nil, validationError(err)
	}

	result := s.analyzer.Analyze(ctx, params.Query)
	s.recorder.RecordAIOutcome(outcome(result))

	var analysis model.Analysis
	switch result.Reason {
	case ai.ReasonNone:
		analysis = result.Analysis
	case ai.ReasonEmpty, ai.ReasonMalformed:
		analysis = model.FallbackAnalysis(query)
	case ai.ReasonUpstream:
		if !s.opts.DegradeOnFailure {
			return nil, model.ErrAIAnalysisFailed
		}
		analysis = model.DegradedAnalysis(query)
	default:
		return nil, fmt.Errorf("unknown analysis outcome %q", result.Reason)
	}

	filter := model.SearchFilter{Query: params.Query, Fields: model.BroadFields}
	products, err := s.productRepo.Search(ctx, filter, s.opts.ResultLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", params.Query).Msg("failed to run broad search")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	summaries := make([]model.ProductSummary, len(products))
	for i, p := range products {
		summaries[i] = p.Summary()
	}

	s.recordSearch(ctx, query, analysis, len(summaries))

	s.logger.Info().
		Str("query", params.Query).
		Str("outcome", outcome(result)).
		Int("results", len(summaries)).
		Msg("AI search completed")

	return &model.AISearchResult{
		Products: summaries,
		Analysis: analysis,
	}, nil
}

// recordSearch appends a search log row in its own transaction. Failures are logged
// and counted but never surface to the caller.
func (s *aiSearchService) recordSearch(ctx context.Context, query string, analysis model.Analysis, resultsCount int) {
	entry, err := s.writeSearchLog(ctx, query, analysis, resultsCount)
	if err != nil {
		s.recorder.RecordSearchLogFailure()
		s.logger.Warn().Err(err).Str("query", query).Msg("failed to record search log")
		return
	}

	if err := s.publisher.PublishSearchLog(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Int64("search_log_id", entry.ID).Msg("failed to publish search log")
	}
}

func (s *aiSearchService) writeSearchLog(ctx context.Context, query string, analysis model.Analysis, resultsCount int) (entry *model.SearchLog, err error) {
	encoded, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	tx, err := s.logRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	entry = &model.SearchLog{
		Query:         query,
		EnhancedQuery: string(encoded),
		ResultsCount:  resultsCount,
		IsAISearch:    true,
	}

	if err = s.logRepo.Create(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to insert search log: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit search log: %w", err)
	}

	return entry, nil
}

// outcome labels an analysis result for metrics and logs.
func outcome(r ai.Result) string {
	switch {
	case r.Cached:
		return "cached"
	case r.OK():
		return "ok"
	default:
		return string(r.Reason)
	}
}
