package scoring

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/internradar/internradar/internal/listing"
)

const (
	// NeutralComponent is the normalized value used when a criterion is
	// unknown (missing stipend or posting date). "Not specified" must rank
	// above worst-possible but below a confirmed good value.
	NeutralComponent = 0.35

	// DefaultStipendCeiling is the monthly amount that maps to a full
	// stipend component.
	DefaultStipendCeiling = 5000.0

	defaultMaxAgeDays = 30
)

// startupIndicators give a mid-tier reputation to companies that look like
// registered businesses but are not in the known-companies table.
var startupIndicators = []string{"inc", "llc", "corp", "ltd", "startup", "tech", "software"}

// ScoredListing pairs a listing with its ranking scores. The listing itself
// is never modified.
type ScoredListing struct {
	Listing         *listing.Listing   `json:"listing"`
	RelevanceScore  float64            `json:"relevance_score"`
	CompositeScore  float64            `json:"composite_score"`
	ComponentScores map[string]float64 `json:"component_scores"`
}

// Ranker combines relevance, stipend, recency and company reputation into
// one weighted composite score.
type Ranker struct {
	weights    Weights
	ceiling    float64
	reputation map[string]float64
}

// NewRanker builds a ranker with the injected weight mapping and reputation
// table. Weights are validated before any scoring happens.
func NewRanker(weights Weights, ceiling float64, reputation map[string]float64) (*Ranker, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	if ceiling <= 0 {
		ceiling = DefaultStipendCeiling
	}
	if reputation == nil {
		reputation = DefaultReputation()
	}

	return &Ranker{weights: weights, ceiling: ceiling, reputation: reputation}, nil
}

// Rank scores every listing and returns them ordered by composite score
// descending. Ties break on relevance, then posting date (more recent
// first), then ID, so the ordering is fully deterministic.
func (r *Ranker) Rank(items []*listing.Listing, relevance map[string]float64, maxAgeDays int, now time.Time) []ScoredListing {
	if maxAgeDays <= 0 {
		maxAgeDays = defaultMaxAgeDays
	}

	scored := make([]ScoredListing, 0, len(items))
	for _, l := range items {
		rel := relevance[l.ID]

		components := map[string]float64{
			CriterionRelevance:  rel / MaxRelevance,
			CriterionStipend:    r.stipendComponent(l),
			CriterionRecency:    recencyComponent(l, maxAgeDays, now),
			CriterionReputation: r.Reputation(l.Company),
		}

		composite := components[CriterionRelevance]*r.weights.Relevance +
			components[CriterionStipend]*r.weights.Stipend +
			components[CriterionRecency]*r.weights.Recency +
			components[CriterionReputation]*r.weights.Reputation

		scored = append(scored, ScoredListing{
			Listing:         l,
			RelevanceScore:  rel,
			CompositeScore:  composite,
			ComponentScores: components,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.CompositeScore != b.CompositeScore {
			return a.CompositeScore > b.CompositeScore
		}
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		if !equalDates(a.Listing.PostingDate, b.Listing.PostingDate) {
			return laterDate(a.Listing.PostingDate, b.Listing.PostingDate)
		}
		return a.Listing.ID < b.Listing.ID
	})

	return scored
}

func (r *Ranker) stipendComponent(l *listing.Listing) float64 {
	if l.StipendAmount == nil {
		return NeutralComponent
	}
	return clamp01(*l.StipendAmount / r.ceiling)
}

func recencyComponent(l *listing.Listing, maxAgeDays int, now time.Time) float64 {
	if l.PostingDate == nil {
		return NeutralComponent
	}
	age := float64(l.AgeDays(now))
	return clamp01(1 - age/float64(maxAgeDays))
}

// Reputation looks up the company in the known-companies table by substring
// match. Unknown companies get a mid or low default depending on whether the
// name looks like a registered business.
func (r *Ranker) Reputation(company string) float64 {
	name := strings.TrimSpace(strings.ToLower(company))
	if name == "" {
		return 0.0
	}

	// Maps iterate in random order; taking the best match keeps the score
	// deterministic when a name contains several table keys.
	best, found := 0.0, false
	for known, score := range r.reputation {
		if strings.Contains(name, known) && (!found || score > best) {
			best, found = score, true
		}
	}
	if found {
		return best
	}

	for _, indicator := range startupIndicators {
		if strings.Contains(name, indicator) {
			return 0.5
		}
	}

	return 0.3
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func equalDates(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// laterDate orders non-nil dates before nil and more recent before older.
func laterDate(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}
