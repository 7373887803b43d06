package filtering

import (
	"context"
	"strings"

	"github.com/internradar/internradar/internal/listing"
)

type locationFilter struct {
	base
}

// NewLocation creates the step that matches the profile's preferred
// location. An empty preference means no constraint; a remote preference
// keeps remote-tagged listings; otherwise a case-insensitive substring
// match on the listing location applies.
func NewLocation() Filter {
	return &locationFilter{base{name: "location"}}
}

func (f *locationFilter) Apply(_ context.Context, deps Deps, ls *listing.Listings) (*listing.Listings, Step, error) {
	initial := ls.Len()

	if deps.Profile == nil || strings.TrimSpace(deps.Profile.PreferredLocation) == "" {
		return ls, Step{Initial: initial, Left: initial}, nil
	}

	preferred := strings.ToLower(strings.TrimSpace(deps.Profile.PreferredLocation))
	wantsRemote := deps.Profile.WantsRemote()

	kept := &listing.Listings{}
	for _, l := range ls.Items {
		location := strings.ToLower(l.Location)
		switch {
		case wantsRemote && l.IsRemote():
			kept.Append(l)
		case strings.Contains(location, preferred):
			kept.Append(l)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}
