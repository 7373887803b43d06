// Package extract normalizes raw scraped records into typed listings.
// All parsing is total: malformed input degrades to nil fields plus a soft
// warning, it never produces an error.
package extract

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/internradar/internradar/internal/listing"
	"github.com/internradar/internradar/internal/utils"
)

// rawRecord mirrors the loosely-typed maps returned by ingestion sources.
// Optional keys may be absent; the decoder tolerates both.
type rawRecord struct {
	Title       string `mapstructure:"title"`
	Company     string `mapstructure:"company"`
	Location    string `mapstructure:"location"`
	Description string `mapstructure:"description"`
	URL         string `mapstructure:"url"`
	JobURL      string `mapstructure:"job_url"`
	StipendText string `mapstructure:"stipend_text"`
	Salary      string `mapstructure:"salary"`
	PostedText  string `mapstructure:"date_posted"`
	Site        string `mapstructure:"site"`
}

// FromRaw converts one raw record into a listing. The returned warnings
// describe fields that were present but could not be normalized.
func FromRaw(raw map[string]any, now time.Time) (*listing.Listing, []string) {
	var rec rawRecord

	cfg := &mapstructure.DecoderConfig{
		Result:           &rec,
		WeaklyTypedInput: true,
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(raw); err != nil {
		return nil, []string{fmt.Sprintf("undecodable raw record: %v", err)}
	}

	var warnings []string

	url := strings.TrimSpace(rec.URL)
	if url == "" {
		url = strings.TrimSpace(rec.JobURL)
	}

	stipendText := strings.TrimSpace(rec.StipendText)
	if stipendText == "" {
		stipendText = strings.TrimSpace(rec.Salary)
	}

	l := &listing.Listing{
		Title:          strings.TrimSpace(rec.Title),
		Company:        strings.TrimSpace(rec.Company),
		Location:       strings.TrimSpace(rec.Location),
		Description:    strings.TrimSpace(rec.Description),
		RawStipendText: stipendText,
		SourceSite:     site(rec.Site),
		URL:            url,
	}
	l.ID = DeriveID(l.Title, l.Company, l.Location)

	l.StipendAmount = ParseStipend(stipendText, l.Description)
	if stipendText != "" && l.StipendAmount == nil {
		warnings = append(warnings, fmt.Sprintf("stipend text not recognized: %s", utils.TruncateForLog(stipendText, 40)))
	}

	l.PostingDate = ParseDate(rec.PostedText, now)
	if strings.TrimSpace(rec.PostedText) != "" && l.PostingDate == nil {
		warnings = append(warnings, fmt.Sprintf("posting date not recognized: %s", utils.TruncateForLog(rec.PostedText, 40)))
	}

	return l, warnings
}

// DeriveID produces the stable dedup signature for a listing. Identical raw
// title/company/location always yield the same ID, across runs and sources.
func DeriveID(title, company, location string) string {
	key := strings.Join([]string{
		normalizeKey(title),
		normalizeKey(company),
		normalizeKey(location),
	}, "|")

	sum := sha1.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:16]
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func site(s string) listing.SourceSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linkedin":
		return listing.SiteLinkedin
	case "indeed":
		return listing.SiteIndeed
	case "fallback":
		return listing.SiteFallback
	default:
		return listing.SiteUnknown
	}
}
