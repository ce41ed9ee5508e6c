package aggregate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skjoshi/internscout/internal/models"
)

type fakeScraper struct {
	name     string
	postings map[string][]models.Posting
	err      error
	calls    []string
}

func (f *fakeScraper) Name() string { return f.name }

func (f *fakeScraper) Fetch(_ context.Context, term string) ([]models.Posting, error) {
	f.calls = append(f.calls, term)
	if f.err != nil {
		return nil, f.err
	}
	return f.postings[term], nil
}

func posting(link string) models.Posting {
	return models.Posting{Title: "Intern", Company: "Acme", Location: "Remote", Stipend: "Unpaid", Link: link}
}

func TestDriverToleratesFailingSource(t *testing.T) {
	broken := &fakeScraper{name: "broken", err: errors.New("connection refused")}
	healthy := &fakeScraper{
		name: "healthy",
		postings: map[string][]models.Posting{
			"a": {posting("https://x/1"), posting("https://x/2")},
			"b": {posting("https://x/3")},
		},
	}

	driver := &Driver{
		Sources: []Source{
			{Scraper: broken, Terms: []string{"a", "b"}},
			{Scraper: healthy, Terms: []string{"a", "b"}},
		},
		Sleep: func(time.Duration) {},
	}

	postings, stats := driver.Run(context.Background())

	if len(postings) != 3 {
		t.Fatalf("expected 3 postings from healthy source, got %d", len(postings))
	}
	if stats.FailedTerms != 2 {
		t.Fatalf("FailedTerms = %d, want 2", stats.FailedTerms)
	}
	if stats.FoundBySource["broken"] != 0 {
		t.Fatalf("broken source should count zero, got %d", stats.FoundBySource["broken"])
	}
	if stats.FoundBySource["healthy"] != 3 {
		t.Fatalf("healthy source count = %d, want 3", stats.FoundBySource["healthy"])
	}
}

func TestDriverPreservesInsertionOrder(t *testing.T) {
	first := &fakeScraper{
		name: "first",
		postings: map[string][]models.Posting{
			"a": {posting("https://x/1")},
			"b": {posting("https://x/2")},
		},
	}
	second := &fakeScraper{
		name:     "second",
		postings: map[string][]models.Posting{"a": {posting("https://x/3")}},
	}

	driver := &Driver{
		Sources: []Source{
			{Scraper: first, Terms: []string{"a", "b"}},
			{Scraper: second, Terms: []string{"a"}},
		},
		Sleep: func(time.Duration) {},
	}

	postings, _ := driver.Run(context.Background())

	wantLinks := []string{"https://x/1", "https://x/2", "https://x/3"}
	if len(postings) != len(wantLinks) {
		t.Fatalf("expected %d postings, got %d", len(wantLinks), len(postings))
	}
	for i, want := range wantLinks {
		if postings[i].Link != want {
			t.Fatalf("postings[%d].Link = %q, want %q", i, postings[i].Link, want)
		}
	}
	if len(first.calls) != 2 || first.calls[0] != "a" || first.calls[1] != "b" {
		t.Fatalf("unexpected term order: %v", first.calls)
	}
}

func TestDriverSleepsAfterEveryTerm(t *testing.T) {
	healthy := &fakeScraper{name: "healthy", postings: map[string][]models.Posting{}}

	var pauses int
	driver := &Driver{
		Sources: []Source{{Scraper: healthy, Terms: []string{"a", "b", "c"}}},
		Delay:   time.Second,
		Sleep:   func(d time.Duration) { pauses++ },
	}

	driver.Run(context.Background())

	if pauses != 3 {
		t.Fatalf("expected a pause after each of 3 terms, got %d", pauses)
	}
}

func TestDriverAllSourcesFailing(t *testing.T) {
	driver := &Driver{
		Sources: []Source{
			{Scraper: &fakeScraper{name: "one", err: errors.New("boom")}, Terms: []string{"a"}},
			{Scraper: &fakeScraper{name: "two", err: errors.New("boom")}, Terms: []string{"a"}},
		},
		Sleep: func(time.Duration) {},
	}

	postings, stats := driver.Run(context.Background())
	if len(postings) != 0 {
		t.Fatalf("expected empty result, got %d postings", len(postings))
	}
	if stats.FailedTerms != 2 {
		t.Fatalf("FailedTerms = %d, want 2", stats.FailedTerms)
	}
}
