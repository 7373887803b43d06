package extract

import "testing"

func TestParseStipend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect float64
		none   bool
	}{
		{
			name:   "plain monthly with symbol",
			text:   "Stipend: $3,000/month",
			expect: 3000,
		},
		{
			name:   "hourly converted to monthly",
			text:   "pays $20/hour plus perks",
			expect: 3200,
		},
		{
			name:   "yearly converted to monthly",
			text:   "$60,000 per year",
			expect: 5000,
		},
		{
			name:   "range averaged to midpoint",
			text:   "$2,000 - $3,000 per month",
			expect: 2500,
		},
		{
			name:   "range without symbols but with period",
			text:   "2000-3000 /month",
			expect: 2500,
		},
		{
			name:   "k suffix",
			text:   "$4k/month",
			expect: 4000,
		},
		{
			name:   "pound symbol without period defaults to monthly",
			text:   "£1,200 stipend",
			expect: 1200,
		},
		{
			name: "no amount at all",
			text: "competitive pay and great mentorship",
			none: true,
		},
		{
			name: "bare number is not a stipend",
			text: "join a team of 12 engineers",
			none: true,
		},
		{
			name: "duration is not a stipend",
			text: "2-3 months, full time",
			none: true,
		},
		{
			name: "empty",
			text: "",
			none: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseStipend(tt.text)
			if tt.none {
				if got != nil {
					t.Fatalf("expected no stipend, got %v", *got)
				}
				return
			}

			if got == nil {
				t.Fatalf("expected %v, got nil", tt.expect)
			}
			if *got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, *got)
			}
		})
	}
}

func TestParseStipendScansLaterMatches(t *testing.T) {
	t.Parallel()

	// The leading bare numbers carry no currency cue and must be skipped.
	got := ParseStipend("posted 3 days ago, team of 5, pays $2,500 per month")
	if got == nil {
		t.Fatalf("expected a stipend match")
	}
	if *got != 2500 {
		t.Fatalf("expected 2500, got %v", *got)
	}
}

func TestParseStipendPrefersDedicatedText(t *testing.T) {
	t.Parallel()

	got := ParseStipend("$1,500/month", "description mentions $9,999/month")
	if got == nil || *got != 1500 {
		t.Fatalf("expected the first text to win, got %v", got)
	}
}
