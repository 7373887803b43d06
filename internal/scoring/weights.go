package scoring

import (
	"errors"
	"fmt"
	"math"
)

// Criterion names accepted in a weight mapping.
const (
	CriterionRelevance  = "relevance"
	CriterionStipend    = "stipend"
	CriterionRecency    = "recency"
	CriterionReputation = "reputation"
)

// weightEpsilon is the tolerance when checking that weights sum to 1.0.
const weightEpsilon = 1e-6

// ErrInvalidWeights marks a weight configuration rejected before any scoring.
var ErrInvalidWeights = errors.New("invalid ranking weights")

// Weights holds the per-criterion contributions to the composite score.
type Weights struct {
	Relevance  float64 `mapstructure:"relevance"`
	Stipend    float64 `mapstructure:"stipend"`
	Recency    float64 `mapstructure:"recency"`
	Reputation float64 `mapstructure:"reputation"`
}

// DefaultWeights returns the standard criterion mix.
func DefaultWeights() Weights {
	return Weights{
		Relevance:  0.4,
		Stipend:    0.3,
		Recency:    0.2,
		Reputation: 0.1,
	}
}

// WeightsFromMap builds Weights from a configured mapping. An empty map
// yields the defaults; an unknown criterion name is a configuration error.
func WeightsFromMap(m map[string]float64) (Weights, error) {
	if len(m) == 0 {
		return DefaultWeights(), nil
	}

	var w Weights
	for name, value := range m {
		switch name {
		case CriterionRelevance:
			w.Relevance = value
		case CriterionStipend:
			w.Stipend = value
		case CriterionRecency:
			w.Recency = value
		case CriterionReputation:
			w.Reputation = value
		default:
			return w, fmt.Errorf("%w: unknown criterion %q", ErrInvalidWeights, name)
		}
	}

	return w, nil
}

// Validate checks that every weight is non-negative and the sum is 1.0
// within epsilon.
func (w Weights) Validate() error {
	for name, value := range map[string]float64{
		CriterionRelevance:  w.Relevance,
		CriterionStipend:    w.Stipend,
		CriterionRecency:    w.Recency,
		CriterionReputation: w.Reputation,
	} {
		if value < 0 {
			return fmt.Errorf("%w: %s weight is negative (%v)", ErrInvalidWeights, name, value)
		}
	}

	sum := w.Relevance + w.Stipend + w.Recency + w.Reputation
	if math.Abs(sum-1.0) > weightEpsilon {
		return fmt.Errorf("%w: weights sum to %v, expected 1.0", ErrInvalidWeights, sum)
	}

	return nil
}
