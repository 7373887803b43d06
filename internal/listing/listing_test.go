package listing

import (
	"testing"
	"time"
)

func TestCompleteness(t *testing.T) {
	t.Parallel()

	amount := 2000.0
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		listing Listing
		expect  int
	}{
		{name: "bare", listing: Listing{Title: "Intern"}, expect: 0},
		{name: "stipend only", listing: Listing{StipendAmount: &amount}, expect: 1},
		{name: "stipend and date", listing: Listing{StipendAmount: &amount, PostingDate: &date}, expect: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.listing.Completeness(); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestAgeDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	posted := now.AddDate(0, 0, -10)
	future := now.Add(6 * time.Hour)

	l := Listing{PostingDate: &posted}
	if got := l.AgeDays(now); got != 10 {
		t.Fatalf("expected 10 days, got %d", got)
	}

	l = Listing{PostingDate: &future}
	if got := l.AgeDays(now); got != 0 {
		t.Fatalf("expected a future date clamped to 0, got %d", got)
	}

	l = Listing{}
	if got := l.AgeDays(now); got != -1 {
		t.Fatalf("expected -1 for an unknown date, got %d", got)
	}
}

func TestIsRemote(t *testing.T) {
	t.Parallel()

	if !(&Listing{Location: "Remote (US)"}).IsRemote() {
		t.Fatalf("expected remote detection")
	}
	if (&Listing{Location: "New York, NY"}).IsRemote() {
		t.Fatalf("expected a city location to not be remote")
	}
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	ls := &Listings{}
	ls.Append(&Listing{ID: "a"}, &Listing{ID: "b"})

	if ls.FindByID("b") == nil {
		t.Fatalf("expected to find listing b")
	}
	if ls.FindByID("missing") != nil {
		t.Fatalf("expected nil for an unknown id")
	}
}

func TestNormalizeSkills(t *testing.T) {
	t.Parallel()

	got := NormalizeSkills([]string{" Python ", "SQL", "", "  "})
	if len(got) != 2 || got[0] != "python" || got[1] != "sql" {
		t.Fatalf("expected [python sql], got %v", got)
	}
}

func TestWantsRemote(t *testing.T) {
	t.Parallel()

	if !(&Profile{PreferredLocation: "remote"}).WantsRemote() {
		t.Fatalf("expected remote preference detection")
	}
	if (&Profile{PreferredLocation: "Austin, TX"}).WantsRemote() {
		t.Fatalf("expected a city preference to not be remote")
	}
}

func TestReportByCompany(t *testing.T) {
	t.Parallel()

	amount := 1500.0
	ls := &Listings{}
	ls.Append(
		&Listing{Title: "Intern A", Company: "Acme", StipendAmount: &amount},
		&Listing{Title: "Intern B", Company: "Acme"},
		&Listing{Title: "Intern C"},
	)

	report := ls.ReportByCompany()
	if len(report["Acme"]) != 2 {
		t.Fatalf("expected 2 entries for Acme, got %d", len(report["Acme"]))
	}
	if len(report["unknown company"]) != 1 {
		t.Fatalf("expected the blank company grouped as unknown")
	}
	if report["Acme"][0]["stipend"] != "$1500/month" {
		t.Fatalf("expected a formatted stipend, got %q", report["Acme"][0]["stipend"])
	}
}
