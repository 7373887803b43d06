package filtering

import (
	"context"
	"strings"

	"github.com/internradar/internradar/internal/listing"
)

var seniorTitleWords = []string{"senior", "lead", "principal", "manager", "director"}

type seniorityFilter struct {
	base
}

// NewSeniority creates the step that drops senior-level postings that slip
// through keyword-based searches for internships.
func NewSeniority() Filter {
	return &seniorityFilter{base{name: "seniority"}}
}

func (f *seniorityFilter) Apply(_ context.Context, _ Deps, ls *listing.Listings) (*listing.Listings, Step, error) {
	initial := ls.Len()

	kept := &listing.Listings{}
	for _, l := range ls.Items {
		if isSeniorTitle(l.Title) {
			continue
		}
		kept.Append(l)
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}

func isSeniorTitle(title string) bool {
	title = strings.ToLower(title)
	for _, word := range seniorTitleWords {
		if strings.Contains(title, word) {
			return true
		}
	}
	return false
}
