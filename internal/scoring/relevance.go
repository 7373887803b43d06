// Package scoring computes per-listing relevance and the weighted composite
// ranking used to order results.
package scoring

import (
	"math"
	"strings"

	"github.com/internradar/internradar/internal/listing"
)

const (
	// MaxRelevance is the top of the relevance scale.
	MaxRelevance = 10.0
	// NeutralRelevance is assigned to every listing when the profile has no
	// skills, so ranking still falls back to the other criteria.
	NeutralRelevance = 5.0
)

// DefaultKeywords are the title keywords that mark a posting as an
// internship-type opportunity.
var DefaultKeywords = []string{
	"intern", "internship", "co-op", "coop", "trainee", "apprentice",
	"entry level", "junior", "graduate", "student", "summer intern",
}

// Scorer computes skill-match relevance between a listing and a profile.
type Scorer struct {
	keywords []string
}

func NewScorer(keywords []string) *Scorer {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	return &Scorer{keywords: keywords}
}

// Keywords returns the internship keywords in use, for query building.
func (s *Scorer) Keywords() []string {
	return s.keywords
}

// Score returns the relevance of the listing for the profile on a 0-10 scale.
// The base score is the fraction of profile skills found anywhere in the
// title or description; skills and internship keywords found in the title
// add a bonus so relevant-but-skill-sparse postings do not score zero.
func (s *Scorer) Score(l *listing.Listing, profile *listing.Profile) float64 {
	skills := listing.NormalizeSkills(profile.Skills)
	if len(skills) == 0 {
		return NeutralRelevance
	}

	title := strings.ToLower(l.Title)
	text := title + " " + strings.ToLower(l.Description)

	matched := 0
	titleBonus := 0.0
	for _, skill := range skills {
		if strings.Contains(text, skill) {
			matched++
		}
		if strings.Contains(title, skill) {
			titleBonus++
		}
	}

	keywordBonus := 0.0
	for _, keyword := range s.keywords {
		if strings.Contains(title, keyword) {
			keywordBonus += 0.5
		}
	}

	base := float64(matched) / float64(len(skills)) * MaxRelevance
	score := math.Min(MaxRelevance, base+titleBonus+keywordBonus)

	return math.Round(score*100) / 100
}
