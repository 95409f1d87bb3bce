package repository

import (
	"context"
	"errors"
	"fmt"

	"aisle-finder/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Search returns at most limit products matching the filter, ordered by id.
func (r *productRepository) Search(ctx context.Context, filter model.SearchFilter, limit int) ([]model.Product, error) {
	predicate, err := buildPredicate(filter)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, location, jan_code,
		       COALESCE(description, ''), COALESCE(department, ''),
		       COALESCE(category, ''), COALESCE(subcategory, '')
		FROM products
		WHERE ` + predicate + `
		ORDER BY id
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, append(likeArgs(filter.Query), limit)...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("query", filter.Query).
			Int("limit", limit).
			Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Location,
			&p.JANCode,
			&p.Description,
			&p.Department,
			&p.Category,
			&p.Subcategory,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Count returns the number of products matching the filter.
func (r *productRepository) Count(ctx context.Context, filter model.SearchFilter) (int, error) {
	predicate, err := buildPredicate(filter)
	if err != nil {
		return 0, err
	}

	query := `SELECT COUNT(*) FROM products WHERE ` + predicate

	var count int
	if err := r.pool.QueryRow(ctx, query, likeArgs(filter.Query)...).Scan(&count); err != nil {
		r.logger.Error().Err(err).Str("query", filter.Query).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

// GetInventory retrieves the inventory columns of a product.
func (r *productRepository) GetInventory(ctx context.Context, id int64) (*model.InventoryRecord, error) {
	query := `
		SELECT id, name, stock_quantity, recent_sales, revenue, next_shipment,
		       on_promotion, promotion_text, updated_at
		FROM products
		WHERE id = $1
	`

	var rec model.InventoryRecord
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.Name,
		&rec.StockQuantity,
		&rec.RecentSales,
		&rec.Revenue,
		&rec.NextShipment,
		&rec.OnPromotion,
		&rec.PromotionText,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query inventory")
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}

	return &rec, nil
}

// InsertIgnoringConflicts inserts products in one transaction, skipping existing JAN codes.
func (r *productRepository) InsertIgnoringConflicts(ctx context.Context, products []model.NewProduct) (inserted int, err error) {
	if len(products) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	query := `
		INSERT INTO products (name, jan_code, location, department, category, subcategory)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		ON CONFLICT (jan_code) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.Name, p.JANCode, p.Location, p.Department, p.Category, p.Subcategory)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < len(products); i++ {
		tag, execErr := results.Exec()
		if execErr != nil {
			results.Close()
			r.logger.Error().
				Err(execErr).
				Str("name", products[i].Name).
				Msg("failed to insert product")
			err = fmt.Errorf("failed to insert product %q: %w", products[i].Name, execErr)
			return 0, err
		}
		inserted += int(tag.RowsAffected())
	}

	if err = results.Close(); err != nil {
		r.logger.Error().Err(err).Msg("failed to close batch results")
		return 0, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit product batch")
		return 0, fmt.Errorf("failed to commit product batch: %w", err)
	}

	r.logger.Debug().
		Int("batch_size", len(products)).
		Int("inserted", inserted).
		Msg("product batch inserted")

	return inserted, nil
}
