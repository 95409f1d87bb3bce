package service

import (
	"context"
	"fmt"

	"aisle-finder/internal/model"
	"aisle-finder/internal/repository"

	"github.com/rs/zerolog"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

// searchLogService implements SearchLogService.
type searchLogService struct {
	logRepo repository.SearchLogRepository
	logger  zerolog.Logger
}

// NewSearchLogService creates a new search log service.
func NewSearchLogService(logRepo repository.SearchLogRepository, logger zerolog.Logger) SearchLogService {
	return &searchLogService{
		logRepo: logRepo,
		logger:  logger.With().Str("service", "search_log").Logger(),
	}
}

// Recent returns log entries newest first.
func (s *searchLogService) Recent(ctx context.Context, limit, offset int) ([]model.SearchLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.logRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to list search logs")
		return nil, fmt.Errorf("failed to list search logs: %w", err)
	}

	return logs, nil
}
