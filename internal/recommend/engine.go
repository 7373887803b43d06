// Package recommend wires ingestion, extraction, scoring and filtering into
// the single entry point consumed by any presentation layer.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/internradar/internradar/internal/extract"
	"github.com/internradar/internradar/internal/filtering"
	"github.com/internradar/internradar/internal/ingest"
	"github.com/internradar/internradar/internal/listing"
	"github.com/internradar/internradar/internal/scoring"
)

// DefaultLimit caps the result set when the caller does not ask for a count.
const DefaultLimit = 25

// Config is the externally supplied engine configuration. Everything here is
// validated up front; a bad configuration aborts before any scoring begins.
type Config struct {
	Weights         scoring.Weights
	StipendCeiling  float64
	Reputation      map[string]float64
	DisabledFilters []string
	Keywords        []string
}

// Result is what the presentation layer receives. When IsFallback is set the
// listings are illustrative sample data, never mixed with real records.
type Result struct {
	Results          []scoring.ScoredListing `json:"results"`
	IsFallback       bool                    `json:"is_fallback"`
	FilteredOutCount int                     `json:"filtered_out_count"`
	Warnings         []string                `json:"warnings"`
}

// Engine runs one synchronous recommendation pass per invocation. It holds
// no cross-invocation state beyond its validated configuration.
type Engine struct {
	orch    *ingest.Orchestrator
	scorer  *scoring.Scorer
	ranker  *scoring.Ranker
	filters []filtering.Filter
	logger  *zap.Logger
	now     func() time.Time
}

// New validates the configuration and builds an engine. Invalid weights or
// an unknown filter name fail here, before any data is touched.
func New(cfg *Config, orch *ingest.Orchestrator, logger *zap.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{Weights: scoring.DefaultWeights()}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ranker, err := scoring.NewRanker(cfg.Weights, cfg.StipendCeiling, cfg.Reputation)
	if err != nil {
		return nil, err
	}

	filters := filtering.Default()
	if err := filtering.DisableByName(filters, cfg.DisabledFilters); err != nil {
		return nil, err
	}

	return &Engine{
		orch:    orch,
		scorer:  scoring.NewScorer(cfg.Keywords),
		ranker:  ranker,
		filters: filters,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Recommend ingests, extracts, scores, filters and ranks listings for the
// profile, returning at most limit results. Soft issues accumulate into the
// result's warnings; only missing inputs produce an error.
func (e *Engine) Recommend(ctx context.Context, profile *listing.Profile, limit int) (*Result, error) {
	if profile == nil {
		return nil, errors.New("profile is required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	now := e.now()
	skills := listing.NormalizeSkills(profile.Skills)

	query := ingest.BuildQuery(skills, e.scorer.Keywords(), profile.PreferredLocation, profile.MaxAgeDays)
	records, isFallback, warnings := e.orch.Fetch(ctx, query)

	candidates := &listing.Listings{}
	for _, record := range records {
		l, extractWarnings := extract.FromRaw(record, now)
		if l == nil {
			warnings = append(warnings, extractWarnings...)
			continue
		}
		warnings = append(warnings, extractWarnings...)
		candidates.Append(l)
	}

	e.logger.Info("extracted candidates",
		zap.Int("records", len(records)),
		zap.Int("candidates", candidates.Len()),
		zap.Bool("fallback", isFallback),
	)

	relevance := make(map[string]float64, candidates.Len())
	for _, l := range candidates.Items {
		relevance[l.ID] = e.scorer.Score(l, profile)
	}

	deps := filtering.Deps{Logger: e.logger, Profile: profile, Now: now}
	filtered, droppedCount, err := filtering.Run(ctx, deps, e.filters, candidates)
	if err != nil {
		return nil, fmt.Errorf("filtering: %w", err)
	}

	if filtered.Len() == 0 && candidates.Len() > 0 {
		warnings = append(warnings, "all candidates were removed by the active filters")
	}

	ranked := e.ranker.Rank(filtered.Items, relevance, profile.MaxAgeDays, now)
	// Truncation happens strictly after the full sort.
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return &Result{
		Results:          ranked,
		IsFallback:       isFallback,
		FilteredOutCount: droppedCount,
		Warnings:         warnings,
	}, nil
}
