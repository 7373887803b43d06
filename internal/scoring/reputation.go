package scoring

// DefaultReputation returns the built-in known-companies table. Keys are
// matched as lower-cased substrings of the company name. Deployments can
// replace the table entirely through configuration.
func DefaultReputation() map[string]float64 {
	known := []string{
		"google", "microsoft", "apple", "amazon", "meta", "facebook",
		"netflix", "uber", "airbnb", "spotify", "twitter", "linkedin",
		"salesforce", "oracle", "ibm", "intel", "nvidia", "tesla",
		"spacex", "palantir", "stripe", "square", "paypal", "visa",
		"mastercard", "goldman sachs", "morgan stanley", "jpmorgan",
		"mckinsey", "bain", "bcg", "deloitte", "pwc", "kpmg",
		"accenture", "cognizant", "infosys", "tcs", "wipro",
	}

	table := make(map[string]float64, len(known))
	for _, name := range known {
		table[name] = 1.0
	}
	return table
}
