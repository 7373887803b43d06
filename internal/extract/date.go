package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var relativeRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(hour|day|week|month)s?\s*ago`)

// ParseDate turns relative ("posted 3 days ago") or absolute date strings
// into a calendar date. Unparseable input yields nil, never an error.
func ParseDate(text string, now time.Time) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "today"), strings.Contains(lower, "just posted"), strings.Contains(lower, "just now"):
		return &now
	case strings.Contains(lower, "yesterday"):
		d := now.AddDate(0, 0, -1)
		return &d
	}

	if m := relativeRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}

		var d time.Time
		switch strings.ToLower(m[2]) {
		case "hour":
			d = now.Add(-time.Duration(n) * time.Hour)
		case "day":
			d = now.AddDate(0, 0, -n)
		case "week":
			d = now.AddDate(0, 0, -n*7)
		case "month":
			d = now.AddDate(0, -n, 0)
		}
		return &d
	}

	parsed, err := dateparse.ParseAny(text)
	if err != nil {
		return nil
	}

	// Reject implausible years that dateparse sometimes produces for
	// number-heavy strings.
	if parsed.Year() < 2000 || parsed.Year() > now.Year()+1 {
		return nil
	}

	return &parsed
}
