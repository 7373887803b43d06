package ingest

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

type stubSource struct {
	name    string
	records []map[string]any
	err     error
	delay   time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, _ Query) ([]map[string]any, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func record(title string) map[string]any {
	return map[string]any{"title": title, "company": "Acme", "url": "https://example.com/" + title}
}

func TestFetchMergesInConfiguredOrder(t *testing.T) {
	t.Parallel()

	orch := NewOrchestrator([]Source{
		&stubSource{name: "linkedin", records: []map[string]any{record("a")}, delay: 20 * time.Millisecond},
		&stubSource{name: "indeed", records: []map[string]any{record("b")}},
	}, time.Second, nil, nil)

	records, usedFallback, warnings := orch.Fetch(context.Background(), Query{})
	if usedFallback || len(warnings) != 0 {
		t.Fatalf("unexpected fallback or warnings: %v", warnings)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// The slower source is listed first, so its records come first.
	if records[0]["title"] != "a" || records[1]["title"] != "b" {
		t.Fatalf("expected configured source order, got %v then %v", records[0]["title"], records[1]["title"])
	}
	if orch.State() != StateSucceeded {
		t.Fatalf("expected state %s, got %s", StateSucceeded, orch.State())
	}
}

func TestFetchIsolatesSourceFailure(t *testing.T) {
	t.Parallel()

	orch := NewOrchestrator([]Source{
		&stubSource{name: "linkedin", err: errors.New("rate limited")},
		&stubSource{name: "indeed", records: []map[string]any{record("b")}},
	}, time.Second, nil, nil)

	records, usedFallback, warnings := orch.Fetch(context.Background(), Query{})
	if usedFallback {
		t.Fatalf("fallback must not trigger while one source still delivers")
	}
	if len(records) != 1 || records[0]["title"] != "b" {
		t.Fatalf("expected the healthy source's records, got %v", records)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "linkedin") {
		t.Fatalf("expected a warning naming the failed source, got %v", warnings)
	}
	if orch.State() != StateSucceeded {
		t.Fatalf("expected state %s, got %s", StateSucceeded, orch.State())
	}
}

func TestFetchTimeoutCountsAsFailure(t *testing.T) {
	t.Parallel()

	orch := NewOrchestrator([]Source{
		&stubSource{name: "linkedin", records: []map[string]any{record("a")}, delay: time.Second},
		&stubSource{name: "indeed", records: []map[string]any{record("b")}},
	}, 30*time.Millisecond, nil, nil)

	records, _, warnings := orch.Fetch(context.Background(), Query{})
	if len(records) != 1 || records[0]["title"] != "b" {
		t.Fatalf("expected only the fast source's records, got %v", records)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "linkedin") {
		t.Fatalf("expected a timeout warning for linkedin, got %v", warnings)
	}
}

func TestFetchFallsBackWhenAllFail(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(5, rand.New(rand.NewSource(1)))
	orch := NewOrchestrator([]Source{
		&stubSource{name: "linkedin", err: errors.New("blocked")},
		&stubSource{name: "indeed", err: errors.New("blocked")},
	}, time.Second, gen, nil)

	records, usedFallback, warnings := orch.Fetch(context.Background(), Query{})
	if !usedFallback {
		t.Fatalf("expected fallback when every source fails")
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 sample records, got %d", len(records))
	}
	if orch.State() != StateFailed {
		t.Fatalf("expected state %s, got %s", StateFailed, orch.State())
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "illustrative sample") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a warning disclosing sample data, got %v", warnings)
	}
}

func TestFetchEmptyWithoutFallback(t *testing.T) {
	t.Parallel()

	orch := NewOrchestrator([]Source{
		&stubSource{name: "linkedin"},
	}, time.Second, nil, nil)

	records, usedFallback, warnings := orch.Fetch(context.Background(), Query{})
	if usedFallback || len(records) != 0 {
		t.Fatalf("expected an empty result without a generator, got %v", records)
	}
	if len(warnings) == 0 {
		t.Fatalf("expected a warning about the empty result")
	}
	if orch.State() != StateEmpty {
		t.Fatalf("expected state %s, got %s", StateEmpty, orch.State())
	}
}

func TestBuildQueryCapsTerms(t *testing.T) {
	t.Parallel()

	skills := []string{"python", "sql", "go", "rust", "java", "c++", "scala"}
	keywords := []string{"intern", "internship", "co-op", "trainee"}

	q := BuildQuery(skills, keywords, "Remote", 30)
	if len(q.Terms) > maxSearchTerms {
		t.Fatalf("expected at most %d terms, got %d", maxSearchTerms, len(q.Terms))
	}
	if q.Terms[0] != "python intern" {
		t.Fatalf("expected skill+keyword terms first, got %q", q.Terms[0])
	}
	if q.Location != "Remote" || q.MaxAgeDays != 30 {
		t.Fatalf("expected location and age carried through, got %+v", q)
	}
}

func TestBuildQueryCombinedTerm(t *testing.T) {
	t.Parallel()

	q := BuildQuery([]string{"python", "sql"}, []string{"intern"}, "", 0)
	last := q.Terms[len(q.Terms)-1]
	if last != "python sql internship" {
		t.Fatalf("expected a combined-skills term, got %q", last)
	}
}
