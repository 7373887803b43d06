package filtering

import (
	"context"

	"go.uber.org/zap"

	"github.com/internradar/internradar/internal/listing"
)

type dedupFilter struct {
	base
}

// NewDedup creates the step that collapses listings sharing the same ID
// (title+company+location signature). The first occurrence wins unless a
// later duplicate carries more complete fields.
func NewDedup() Filter {
	return &dedupFilter{base{name: "dedup"}}
}

func (f *dedupFilter) Apply(_ context.Context, deps Deps, ls *listing.Listings) (*listing.Listings, Step, error) {
	initial := ls.Len()

	kept := &listing.Listings{}
	index := make(map[string]int)

	for _, l := range ls.Items {
		at, seen := index[l.ID]
		if !seen {
			index[l.ID] = len(kept.Items)
			kept.Append(l)
			continue
		}

		if l.Completeness() > kept.Items[at].Completeness() {
			if deps.Logger != nil {
				deps.Logger.Debug("duplicate replaced by more complete record", zap.String("id", l.ID))
			}
			kept.Items[at] = l
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}
