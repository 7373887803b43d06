// Package ingest coordinates fetching raw listing records from external
// sources and substitutes synthetic sample data when every source fails.
package ingest

import (
	"context"
	"fmt"
	"strings"
)

const (
	maxSearchTerms   = 8
	maxSkillsPerTerm = 5
	maxKeywordsUsed  = 3
)

// Source fetches raw listing records from one external site. Records are
// loosely-typed maps; the extractor tolerates missing optional keys.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]map[string]any, error)
}

// Query carries the search request handed to every source.
type Query struct {
	Terms      []string
	Location   string
	MaxAgeDays int
}

// BuildQuery combines profile skills with internship keywords into a capped
// list of search terms.
func BuildQuery(skills, keywords []string, location string, maxAgeDays int) Query {
	terms := make([]string, 0, maxSearchTerms)

	for i, skill := range skills {
		if i >= maxSkillsPerTerm || len(terms) >= maxSearchTerms {
			break
		}
		for j, keyword := range keywords {
			if j >= maxKeywordsUsed || len(terms) >= maxSearchTerms {
				break
			}
			terms = append(terms, fmt.Sprintf("%s %s", skill, keyword))
		}
	}

	if len(skills) >= 2 && len(terms) < maxSearchTerms {
		combined := strings.Join(skills[:min(3, len(skills))], " ")
		terms = append(terms, combined+" internship")
	}

	return Query{Terms: terms, Location: location, MaxAgeDays: maxAgeDays}
}
