package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// hoursPerMonth converts hourly rates into a monthly figure.
const hoursPerMonth = 160

// minPlausibleMonthly rejects matches like "2-3 months" that parse as tiny
// amounts despite carrying a period unit.
const minPlausibleMonthly = 100.0

// stipendRe captures: currency symbol, amount, k-suffix, an optional range
// second half, and an optional period unit.
var stipendRe = regexp.MustCompile(`(?i)([$₹€£])?\s*((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?)\s*(k)?(?:\s*(?:-|–|—|to)\s*([$₹€£])?\s*((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?)\s*(k)?)?(?:\s*(?:/|per)\s*(hour|week|month|year|annum|hr|wk|mo|yr)[a-z]*)?`)

// ParseStipend scans the given texts for a currency-amount pattern and
// returns the monthly equivalent, or nil when nothing usable is found.
// A bare number with no currency symbol, k-suffix, or period unit is not
// treated as a stipend.
func ParseStipend(texts ...string) *float64 {
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}

		for _, m := range stipendRe.FindAllStringSubmatch(text, -1) {
			sym, amount, kilo := m[1], m[2], m[3]
			sym2, amount2, kilo2 := m[4], m[5], m[6]
			unit := strings.ToLower(m[7])

			if sym == "" && sym2 == "" && kilo == "" && kilo2 == "" && unit == "" {
				continue
			}

			value, ok := parseAmount(amount, kilo)
			if !ok {
				continue
			}

			if amount2 != "" {
				upper, ok := parseAmount(amount2, kilo2)
				if ok {
					value = (value + upper) / 2
				}
			}

			monthly := toMonthly(value, unit)
			if monthly < minPlausibleMonthly {
				continue
			}

			return &monthly
		}
	}

	return nil
}

func parseAmount(s, kilo string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if kilo != "" {
		v *= 1000
	}
	return v, true
}

func toMonthly(v float64, unit string) float64 {
	switch {
	case strings.HasPrefix(unit, "h"):
		return v * hoursPerMonth
	case strings.HasPrefix(unit, "w"):
		return v * 4
	case strings.HasPrefix(unit, "y"), unit == "annum":
		return v / 12
	default:
		return v
	}
}
