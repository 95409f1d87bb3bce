package seed

import (
	"context"
	"fmt"

	"aisle-finder/internal/model"
	"aisle-finder/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Result summarises one import run.
type Result struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// Importer inserts seed records into the catalog in batches, leaving existing
// JAN codes untouched.
type Importer struct {
	productRepo repository.ProductRepository
	batchSize   int
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewImporter creates an importer writing batchSize rows per transaction.
func NewImporter(productRepo repository.ProductRepository, batchSize int, logger zerolog.Logger) *Importer {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Importer{
		productRepo: productRepo,
		batchSize:   batchSize,
		validate:    validator.New(),
		logger:      logger.With().Str("component", "importer").Logger(),
	}
}

// Import converts, validates and inserts records. Invalid records are counted in
// Errors and skipped. A database failure aborts the run and returns the partial result.
func (i *Importer) Import(ctx context.Context, records []Record) (*Result, error) {
	result := &Result{}
	batch := make([]model.NewProduct, 0, i.batchSize)

	for idx, rec := range records {
		p, err := rec.Product()
		if err == nil {
			err = i.validate.Struct(p)
		}
		if err != nil {
			i.logger.Warn().Err(err).Int("record", idx).Msg("skipping invalid record")
			result.Errors++
			continue
		}

		batch = append(batch, p)
		if len(batch) >= i.batchSize {
			if err := i.flush(ctx, batch, result); err != nil {
				return result, err
			}
			batch = make([]model.NewProduct, 0, i.batchSize)
		}
	}

	if len(batch) > 0 {
		if err := i.flush(ctx, batch, result); err != nil {
			return result, err
		}
	}

	i.logger.Info().
		Int("inserted", result.Inserted).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Msg("import completed")

	return result, nil
}

func (i *Importer) flush(ctx context.Context, batch []model.NewProduct, result *Result) error {
	inserted, err := i.productRepo.InsertIgnoringConflicts(ctx, batch)
	if err != nil {
		i.logger.Error().Err(err).Int("batch_size", len(batch)).Msg("failed to insert batch")
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	result.Inserted += inserted
	result.Skipped += len(batch) - inserted

	i.logger.Debug().
		Int("batch_size", len(batch)).
		Int("inserted", inserted).
		Msg("batch inserted")

	return nil
}
