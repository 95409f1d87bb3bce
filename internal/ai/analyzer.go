package ai

import (
	"context"

	"aisle-finder/internal/cache"

	"github.com/rs/zerolog"
)

// Analyzer produces a structured analysis for a shopper's query.
type Analyzer interface {
	Analyze(ctx context.Context, query string) Result
}

type analyzer struct {
	generator Generator
	cache     cache.AnalysisCache
	logger    zerolog.Logger
}

// NewAnalyzer creates an analyzer. analysisCache may be nil.
func NewAnalyzer(generator Generator, analysisCache cache.AnalysisCache, logger zerolog.Logger) Analyzer {
	return &analyzer{
		generator: generator,
		cache:     analysisCache,
		logger:    logger.With().Str("component", "analyzer").Logger(),
	}
}

// Analyze never returns an error; failures are reported through Result.Reason.
func (a *analyzer) Analyze(ctx context.Context, query string) Result {
	if a.cache != nil {
		analysis, ok, err := a.cache.Get(ctx, query)
		if err != nil {
			a.logger.Warn().Err(err).Str("query", query).Msg("analysis cache lookup failed")
		} else if ok {
			return Result{Analysis: analysis, Cached: true}
		}
	}

	text, err := a.generator.Generate(ctx, BuildPrompt(query))
	if err != nil {
		a.logger.Error().Err(err).Str("query", query).Msg("generative API call failed")
		return Result{Reason: ReasonUpstream, Err: err}
	}

	result := Parse(text)
	if !result.OK() {
		a.logger.Warn().
			Err(result.Err).
			Str("query", query).
			Str("reason", string(result.Reason)).
			Msg("generative API returned no usable analysis")
		return result
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, query, result.Analysis); err != nil {
			a.logger.Warn().Err(err).Str("query", query).Msg("failed to cache analysis")
		}
	}

	return result
}
