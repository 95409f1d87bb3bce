package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the catalog and search log tables if they are missing.
// It is idempotent and safe to run on every start.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id             BIGSERIAL PRIMARY KEY,
		name           VARCHAR(200) NOT NULL,
		jan_code       VARCHAR(13) UNIQUE,
		location       VARCHAR(100) NOT NULL,
		description    TEXT,
		department     VARCHAR(100),
		category       VARCHAR(100),
		subcategory    VARCHAR(100),
		stock_quantity INTEGER,
		recent_sales   INTEGER,
		revenue        NUMERIC(12, 2),
		next_shipment  INTEGER,
		on_promotion   BOOLEAN,
		promotion_text TEXT,
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS search_logs (
		id             BIGSERIAL PRIMARY KEY,
		query          TEXT NOT NULL,
		enhanced_query TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		results_count  INTEGER NOT NULL,
		is_ai_search   BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE INDEX IF NOT EXISTS idx_search_logs_created_at ON search_logs(created_at DESC);
`

// EnsureSchema applies Schema to the database behind pool.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
