package repository

import (
	"context"
	"fmt"

	"aisle-finder/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// searchLogRepository implements the SearchLogRepository interface using PostgreSQL.
type searchLogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSearchLogRepository creates a new PostgreSQL-backed search log repository.
func NewSearchLogRepository(pool *pgxpool.Pool, logger zerolog.Logger) SearchLogRepository {
	return &searchLogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "search_log").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *searchLogRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a search log entry within the provided transaction.
func (r *searchLogRepository) Create(ctx context.Context, tx pgx.Tx, entry *model.SearchLog) error {
	query := `
		INSERT INTO search_logs (query, enhanced_query, results_count, is_ai_search)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query,
		entry.Query,
		entry.EnhancedQuery,
		entry.ResultsCount,
		entry.IsAISearch,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("query", entry.Query).
			Msg("failed to create search log")
		return fmt.Errorf("failed to create search log: %w", err)
	}

	r.logger.Debug().
		Int64("search_log_id", entry.ID).
		Msg("search log created")

	return nil
}

// List returns entries newest first.
func (r *searchLogRepository) List(ctx context.Context, limit, offset int) ([]model.SearchLog, error) {
	query := `
		SELECT id, query, enhanced_query, created_at, results_count, is_ai_search
		FROM search_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query search logs")
		return nil, fmt.Errorf("failed to query search logs: %w", err)
	}
	defer rows.Close()

	logs := []model.SearchLog{}
	for rows.Next() {
		var l model.SearchLog
		err := rows.Scan(&l.ID, &l.Query, &l.EnhancedQuery, &l.CreatedAt, &l.ResultsCount, &l.IsAISearch)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan search log row")
			return nil, fmt.Errorf("failed to scan search log: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating search log rows")
		return nil, fmt.Errorf("error iterating search logs: %w", err)
	}

	return logs, nil
}
