package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aisle-finder/internal/config"
	"aisle-finder/internal/database"
	"aisle-finder/internal/repository"
	"aisle-finder/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	file := flag.String("file", cfg.Seed.FilePath, "seed file path (local path, or key suffix when S3 is enabled)")
	batchSize := flag.Int("batch-size", cfg.Seed.BatchSize, "rows inserted per transaction")
	flag.Parse()

	logger := config.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Seed loader with S3 and local fallback
	fileLoader := seed.NewFileLoader(logger)
	var s3Loader seed.Loader
	if cfg.Seed.S3Enabled {
		s3Loader, err = seed.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	}
	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Seed.S3Prefix, cfg.Seed.S3Enabled, logger)

	records, err := loader.Load(ctx, *file)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	importer := seed.NewImporter(repository.NewProductRepository(pool, logger), *batchSize, logger)
	result, err := importer.Import(ctx, records)
	if err != nil {
		logger.Error().
			Err(err).
			Int("inserted", result.Inserted).
			Int("skipped", result.Skipped).
			Int("errors", result.Errors).
			Msg("import aborted")
		return fmt.Errorf("import failed: %w", err)
	}

	logger.Info().
		Str("file", *file).
		Int("records", len(records)).
		Int("inserted", result.Inserted).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Msg("import completed")

	return nil
}
