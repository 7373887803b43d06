package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State tracks where an invocation is in its fetch lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateFetching  State = "fetching"
	StateSucceeded State = "succeeded"
	StateEmpty     State = "empty"
	StateFailed    State = "failed"
)

// DefaultSourceTimeout bounds each per-source fetch independently.
const DefaultSourceTimeout = 30 * time.Second

// Orchestrator fans a query out across the configured sources, isolating
// per-source failures, and falls back to synthetic sample data when nothing
// real comes back.
type Orchestrator struct {
	sources  []Source
	timeout  time.Duration
	fallback *Generator
	logger   *zap.Logger
	state    State
}

// NewOrchestrator builds an orchestrator. A nil fallback generator means an
// empty fetch yields an empty (but valid) result instead of sample data.
func NewOrchestrator(sources []Source, timeout time.Duration, fallback *Generator, logger *zap.Logger) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultSourceTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		sources:  sources,
		timeout:  timeout,
		fallback: fallback,
		logger:   logger,
		state:    StateIdle,
	}
}

// State returns the terminal state of the last Fetch call.
func (o *Orchestrator) State() State { return o.state }

// Fetch queries every source concurrently, each under its own timeout, and
// merges results in configured source order so output is deterministic for
// deterministic sources. One source failing or timing out never aborts the
// others. When all sources fail or return nothing, the fallback generator
// (if configured) supplies the candidate set and usedFallback is true.
func (o *Orchestrator) Fetch(ctx context.Context, q Query) (records []map[string]any, usedFallback bool, warnings []string) {
	o.state = StateFetching

	results := make([][]map[string]any, len(o.sources))
	errs := make([]error, len(o.sources))

	g := new(errgroup.Group)
	for i, source := range o.sources {
		i, source := i, source
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, o.timeout)
			defer cancel()

			recs, err := source.Fetch(sctx, q)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = recs
			return nil
		})
	}
	// Goroutines record failures in their slot instead of returning them,
	// so Wait never reports an error here.
	_ = g.Wait()

	anyFailed := false
	for i, source := range o.sources {
		if errs[i] != nil {
			anyFailed = true
			warnings = append(warnings, fmt.Sprintf("source %s failed: %v", source.Name(), errs[i]))
			o.logger.Warn("source fetch failed",
				zap.String("source", source.Name()),
				zap.Error(errs[i]),
			)
			continue
		}

		o.logger.Info("source fetch completed",
			zap.String("source", source.Name()),
			zap.Int("records", len(results[i])),
		)
		records = append(records, results[i]...)
	}

	if len(records) > 0 {
		o.state = StateSucceeded
		return records, false, warnings
	}

	if anyFailed {
		o.state = StateFailed
	} else {
		o.state = StateEmpty
	}

	if o.fallback == nil {
		warnings = append(warnings, "no source returned any records")
		return nil, false, warnings
	}

	warnings = append(warnings, "no source returned any records; using illustrative sample listings")
	o.logger.Warn("all sources empty or failed, generating fallback listings",
		zap.String("state", string(o.state)),
	)

	return o.fallback.Generate(), true, warnings
}
