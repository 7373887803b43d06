package recommend

import "github.com/internradar/internradar/internal/scoring"

// Summary aggregates the result set for display.
type Summary struct {
	Total        int     `json:"total"`
	AvgStipend   float64 `json:"avg_stipend"`
	MaxStipend   float64 `json:"max_stipend"`
	MinStipend   float64 `json:"min_stipend"`
	AvgRelevance float64 `json:"avg_relevance"`
	RemoteCount  int     `json:"remote_count"`
}

// Summarize computes display statistics over ranked results. Listings with
// no extracted stipend are excluded from the stipend aggregates.
func Summarize(results []scoring.ScoredListing) Summary {
	s := Summary{Total: len(results)}
	if len(results) == 0 {
		return s
	}

	stipendSum := 0.0
	stipendCount := 0
	relevanceSum := 0.0

	for _, r := range results {
		relevanceSum += r.RelevanceScore

		if r.Listing.IsRemote() {
			s.RemoteCount++
		}

		if r.Listing.StipendAmount == nil {
			continue
		}
		amount := *r.Listing.StipendAmount
		stipendSum += amount
		stipendCount++
		if amount > s.MaxStipend {
			s.MaxStipend = amount
		}
		if s.MinStipend == 0 || amount < s.MinStipend {
			s.MinStipend = amount
		}
	}

	if stipendCount > 0 {
		s.AvgStipend = stipendSum / float64(stipendCount)
	}
	s.AvgRelevance = relevanceSum / float64(len(results))

	return s
}
