package filtering

import (
	"context"

	"github.com/internradar/internradar/internal/listing"
)

type minStipendFilter struct {
	base
}

// NewMinStipend creates the step that enforces the profile's stipend floor.
// A listing with no extracted stipend passes: "not specified" is not zero.
func NewMinStipend() Filter {
	return &minStipendFilter{base{name: "min_stipend"}}
}

func (f *minStipendFilter) Apply(_ context.Context, deps Deps, ls *listing.Listings) (*listing.Listings, Step, error) {
	initial := ls.Len()

	min := 0.0
	if deps.Profile != nil {
		min = deps.Profile.MinStipend
	}
	if min <= 0 {
		return ls, Step{Initial: initial, Left: initial}, nil
	}

	kept := &listing.Listings{}
	for _, l := range ls.Items {
		if l.StipendAmount != nil && *l.StipendAmount < min {
			continue
		}
		kept.Append(l)
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}
