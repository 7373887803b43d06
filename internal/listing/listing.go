package listing

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// SourceSite identifies where a listing came from.
type SourceSite string

const (
	SiteLinkedin SourceSite = "linkedin"
	SiteIndeed   SourceSite = "indeed"
	SiteFallback SourceSite = "fallback"
	SiteUnknown  SourceSite = "unknown"
)

// Listing is a single internship opportunity record. It is immutable after
// extraction: scoring and filtering wrap it, they never modify it.
type Listing struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Description    string     `json:"description,omitempty"`
	RawStipendText string     `json:"raw_stipend_text,omitempty"`
	StipendAmount  *float64   `json:"stipend_amount,omitempty"`
	PostingDate    *time.Time `json:"posting_date,omitempty"`
	SourceSite     SourceSite `json:"source_site"`
	URL            string     `json:"url"`
}

// Completeness counts how many optional normalized fields are populated.
// Used as the tie-break when two raw records collide on the same ID.
func (l *Listing) Completeness() int {
	n := 0
	if l.StipendAmount != nil {
		n++
	}
	if l.PostingDate != nil {
		n++
	}
	return n
}

// IsRemote reports whether the listing is tagged as a remote position.
func (l *Listing) IsRemote() bool {
	return strings.Contains(strings.ToLower(l.Location), "remote")
}

// AgeDays returns the listing age in whole days relative to now, or -1 when
// the posting date is unknown.
func (l *Listing) AgeDays(now time.Time) int {
	if l.PostingDate == nil {
		return -1
	}
	days := int(now.Sub(*l.PostingDate).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

// Listings is an ordered collection of listings.
type Listings struct {
	Items []*Listing
}

func (ls *Listings) Len() int {
	return len(ls.Items)
}

func (ls *Listings) FindByID(id string) *Listing {
	for _, l := range ls.Items {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Append adds listings to the collection, preserving order.
func (ls *Listings) Append(items ...*Listing) {
	ls.Items = append(ls.Items, items...)
}

// DumpToTmpFile writes the collection to a temporary JSON file and returns its name.
func (ls *Listings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "listings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ls); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups listings by company for display.
func (ls *Listings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, l := range ls.Items {
		company := l.Company
		if company == "" {
			company = "unknown company"
		}

		entry := map[string]string{
			"title":    l.Title,
			"location": l.Location,
			"url":      l.URL,
			"source":   string(l.SourceSite),
		}
		if l.StipendAmount != nil {
			entry["stipend"] = fmt.Sprintf("$%.0f/month", *l.StipendAmount)
		}
		if l.PostingDate != nil {
			entry["posted"] = l.PostingDate.Format("2006-01-02")
		}

		report[company] = append(report[company], entry)
	}
	return report
}
