package ingest

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultFallbackCount is how many sample listings the generator produces.
const DefaultFallbackCount = 12

var (
	fallbackCompanies = []string{
		"TechNova Labs", "BrightHire Inc", "DataSprout", "CloudNest Software",
		"PixelForge Studio", "Quantbeam", "Helio Systems", "Arcwing Tech",
	}
	fallbackTitles = []string{
		"Software Engineering Intern", "Data Science Intern",
		"Backend Developer Intern", "Machine Learning Intern",
		"Web Development Intern", "DevOps Intern",
	}
	fallbackLocations = []string{
		"Remote", "New York, NY", "San Francisco, CA",
		"Austin, TX", "Seattle, WA", "Boston, MA",
	}
)

// Generator produces synthetic but realistic sample listings, used only when
// ingestion yields no usable data. Every generated record is tagged with the
// fallback site so callers can disclose that results are illustrative.
type Generator struct {
	count int
	rng   *rand.Rand
}

// NewGenerator builds a generator emitting count listings. A nil rng gets a
// time-based seed; tests inject a seeded one for reproducible content.
func NewGenerator(count int, rng *rand.Rand) *Generator {
	if count <= 0 {
		count = DefaultFallbackCount
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{count: count, rng: rng}
}

// Generate returns raw records shaped exactly like scraped ones, so they
// flow through the same extraction pipeline. Title/company pairs are unique
// so deduplication keeps them all.
func (g *Generator) Generate() []map[string]any {
	pairs := make([][2]string, 0, len(fallbackTitles)*len(fallbackCompanies))
	for _, title := range fallbackTitles {
		for _, company := range fallbackCompanies {
			pairs = append(pairs, [2]string{title, company})
		}
	}
	g.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	count := g.count
	if count > len(pairs) {
		count = len(pairs)
	}

	records := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		title, company := pairs[i][0], pairs[i][1]
		location := fallbackLocations[g.rng.Intn(len(fallbackLocations))]
		stipend := 1000 + g.rng.Intn(35)*100
		daysAgo := g.rng.Intn(10)

		records = append(records, map[string]any{
			"title":        title,
			"company":      company,
			"location":     location,
			"description":  fmt.Sprintf("%s at %s. Work with a mentor on production systems.", title, company),
			"stipend_text": fmt.Sprintf("$%d/month", stipend),
			"date_posted":  fmt.Sprintf("%d days ago", daysAgo),
			"url":          fmt.Sprintf("https://careers.example.com/%d", i+1),
			"site":         "fallback",
		})
	}

	return records
}
