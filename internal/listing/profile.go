package listing

import "strings"

// Profile holds the user preferences for a single invocation. It is never
// persisted between runs.
type Profile struct {
	Skills            []string
	PreferredLocation string
	MinStipend        float64
	MaxAgeDays        int
	// ExperienceLevel is informational only and does not affect scoring.
	ExperienceLevel string
}

// NormalizeSkills lower-cases and trims skill tokens, dropping empty ones.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		normalized = append(normalized, skill)
	}
	return normalized
}

// WantsRemote reports whether the preferred location asks for remote work.
func (p *Profile) WantsRemote() bool {
	return strings.Contains(strings.ToLower(p.PreferredLocation), "remote")
}
