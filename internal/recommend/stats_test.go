package recommend

import (
	"math"
	"testing"

	"github.com/internradar/internradar/internal/listing"
	"github.com/internradar/internradar/internal/scoring"
)

func scoredWith(stipend *float64, relevance float64, location string) scoring.ScoredListing {
	return scoring.ScoredListing{
		Listing:        &listing.Listing{Location: location, StipendAmount: stipend},
		RelevanceScore: relevance,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	if s.Total != 0 || s.AvgStipend != 0 || s.AvgRelevance != 0 {
		t.Fatalf("expected a zero summary, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	low, high := 1000.0, 3000.0
	results := []scoring.ScoredListing{
		scoredWith(&low, 8, "Remote"),
		scoredWith(&high, 6, "Austin, TX"),
		scoredWith(nil, 4, "Remote"),
	}

	s := Summarize(results)
	if s.Total != 3 {
		t.Fatalf("expected 3 total, got %d", s.Total)
	}
	if s.AvgStipend != 2000 || s.MinStipend != 1000 || s.MaxStipend != 3000 {
		t.Fatalf("expected stipend aggregates over known amounts only, got %+v", s)
	}
	if math.Abs(s.AvgRelevance-6) > 1e-9 {
		t.Fatalf("expected average relevance 6, got %v", s.AvgRelevance)
	}
	if s.RemoteCount != 2 {
		t.Fatalf("expected 2 remote listings, got %d", s.RemoteCount)
	}
}
