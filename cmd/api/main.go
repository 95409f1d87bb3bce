package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aisle-finder/internal/ai"
	"aisle-finder/internal/cache"
	"aisle-finder/internal/config"
	"aisle-finder/internal/database"
	"aisle-finder/internal/events"
	"aisle-finder/internal/handler"
	"aisle-finder/internal/metrics"
	"aisle-finder/internal/repository"
	"aisle-finder/internal/router"
	"aisle-finder/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting aisle-finder API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Optional analysis cache
	var analysisCache cache.AnalysisCache
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, AI analysis cache disabled")
		} else {
			defer rdb.Close()
			analysisCache = cache.NewRedisCache(rdb, cfg.AI.CacheTTL, logger)
			logger.Info().Str("addr", cfg.Redis.Addr).Msg("AI analysis cache enabled")
		}
	}

	// Optional search log stream
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		logger.Info().
			Strs("brokers", cfg.Kafka.Brokers).
			Str("topic", cfg.Kafka.Topic).
			Msg("search log stream enabled")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close search log publisher")
		}
	}()

	if cfg.AI.APIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set, AI search will report upstream failures")
	}

	m := metrics.New()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	searchLogRepo := repository.NewSearchLogRepository(pool, logger)

	// Initialize services
	analyzer := ai.NewAnalyzer(ai.NewClient(cfg.AI, logger), analysisCache, logger)
	searchService := service.NewSearchService(productRepo, cfg.Search.PageSize, logger)
	aiSearchService := service.NewAISearchService(
		productRepo,
		searchLogRepo,
		analyzer,
		publisher,
		m,
		service.AISearchOptions{
			ResultLimit:      cfg.AI.ResultLimit,
			DegradeOnFailure: cfg.AI.DegradeOnFailure,
		},
		logger,
	)
	inventoryService := service.NewInventoryService(productRepo, cfg.Inventory.DefaultPolicy, logger)
	searchLogService := service.NewSearchLogService(searchLogRepo, logger)

	// Initialize HTTP handlers and router
	mux := router.New(router.Handlers{
		Search:    handler.NewSearchHandler(searchService, aiSearchService, logger),
		Inventory: handler.NewInventoryHandler(inventoryService, logger),
		SearchLog: handler.NewSearchLogHandler(searchLogService, logger),
	}, m, cfg.Auth.APIKey, logger)

	// Create HTTP server. WriteTimeout leaves room for the generative API call.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
