package filtering

import (
	"context"

	"github.com/internradar/internradar/internal/listing"
)

type maxAgeFilter struct {
	base
}

// NewMaxAge creates the step that drops postings older than the profile's
// ceiling. A listing with an unknown posting date passes.
func NewMaxAge() Filter {
	return &maxAgeFilter{base{name: "max_age"}}
}

func (f *maxAgeFilter) Apply(_ context.Context, deps Deps, ls *listing.Listings) (*listing.Listings, Step, error) {
	initial := ls.Len()

	maxAge := 0
	if deps.Profile != nil {
		maxAge = deps.Profile.MaxAgeDays
	}
	if maxAge <= 0 {
		return ls, Step{Initial: initial, Left: initial}, nil
	}

	kept := &listing.Listings{}
	for _, l := range ls.Items {
		if l.PostingDate != nil && l.AgeDays(deps.Now) > maxAge {
			continue
		}
		kept.Append(l)
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}
