package filtering

import (
	"context"

	"github.com/internradar/internradar/internal/listing"
)

type qualityFilter struct {
	base
}

// NewQuality creates the step that drops records missing critical fields.
// A listing without a title or without an apply link cannot be presented.
func NewQuality() Filter {
	return &qualityFilter{base{name: "quality"}}
}

func (f *qualityFilter) Apply(_ context.Context, _ Deps, ls *listing.Listings) (*listing.Listings, Step, error) {
	initial := ls.Len()

	kept := &listing.Listings{}
	for _, l := range ls.Items {
		if l.Title == "" || l.URL == "" {
			continue
		}
		kept.Append(l)
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}
