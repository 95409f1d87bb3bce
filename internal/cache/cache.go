package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aisle-finder/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "ai:analysis:"

// AnalysisCache stores successful generative analyses keyed by normalised query.
type AnalysisCache interface {
	// Get returns the cached analysis and true, or nil and false on a miss.
	Get(ctx context.Context, query string) (model.Analysis, bool, error)

	// Set stores the analysis for the configured TTL.
	Set(ctx context.Context, query string, analysis model.Analysis) error
}

// redisCache implements AnalysisCache on top of Redis string keys.
type redisCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCache creates an analysis cache backed by the given Redis client.
func NewRedisCache(rdb redis.Cmdable, ttl time.Duration, logger zerolog.Logger) AnalysisCache {
	return &redisCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With().Str("cache", "analysis").Logger(),
	}
}

// Key returns the Redis key for a query.
func Key(query string) string {
	return keyPrefix + query
}

func (c *redisCache) Get(ctx context.Context, query string) (model.Analysis, bool, error) {
	raw, err := c.rdb.Get(ctx, Key(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached analysis: %w", err)
	}

	var analysis model.Analysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next success
		c.logger.Warn().Err(err).Str("query", query).Msg("discarding undecodable cache entry")
		return nil, false, nil
	}

	return analysis, true, nil
}

func (c *redisCache) Set(ctx context.Context, query string, analysis model.Analysis) error {
	raw, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	if err := c.rdb.Set(ctx, Key(query), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}

	return nil
}

// NewClient opens a Redis client and verifies it with PING.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}
