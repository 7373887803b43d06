// Package filtering removes duplicate and unwanted listings through an
// ordered pipeline of hard-filter steps. Every step can be disabled by name
// through configuration; dropped listings are counted, never silently lost.
package filtering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/internradar/internradar/internal/listing"
)

// ErrUnknownFilter marks a disable request for a filter name that does not exist.
var ErrUnknownFilter = errors.New("unknown filter name")

// Filter represents a single filtering step applied to listings.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool
	Apply(ctx context.Context, deps Deps, ls *listing.Listings) (*listing.Listings, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger  *zap.Logger
	Profile *listing.Profile
	Now     time.Time
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
}

// base carries the shared enable/disable state embedded by every step.
type base struct {
	name     string
	disabled bool
	reason   string
}

func (b *base) Name() string { return b.name }

func (b *base) Disable(reason string) {
	b.disabled = true
	b.reason = reason
}

func (b *base) IsEnabled() bool { return !b.disabled }

func (b *base) Status() Status {
	return Status{Name: b.name, Enabled: !b.disabled, Reason: b.reason}
}

// Default returns the standard pipeline in execution order.
func Default() []Filter {
	return []Filter{
		NewQuality(),
		NewDedup(),
		NewSeniority(),
		NewMinStipend(),
		NewLocation(),
		NewMaxAge(),
	}
}

// DisableByName disables the named filters, keeping them in the list. A name
// that matches no filter is a configuration error.
func DisableByName(steps []Filter, names []string) error {
	for _, name := range names {
		found := false
		for _, step := range steps {
			if step.Name() == name {
				step.Disable("disabled via configuration")
				found = true
			}
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}
	}
	return nil
}

// Run executes the supplied filters sequentially, returning the surviving
// listings and the total number dropped across all steps.
func Run(ctx context.Context, deps Deps, steps []Filter, ls *listing.Listings) (*listing.Listings, int, error) {
	dropped := 0

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, ls)
		if err != nil {
			return nil, dropped, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		dropped += info.Dropped
		ls = next
	}

	return ls, dropped, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(interface{ Status() Status }); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}
		statuses = append(statuses, Status{Name: step.Name(), Enabled: step.IsEnabled()})
	}
	return statuses
}
