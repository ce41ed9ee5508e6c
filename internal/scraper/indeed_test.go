package scraper

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestBuildIndeedURL(t *testing.T) {
	got := buildIndeedURL("Machine Learning Intern")
	if !strings.HasPrefix(got, "https://in.indeed.com/jobs?") {
		t.Fatalf("unexpected base: %s", got)
	}
	for _, part := range []string{"q=Machine+Learning+Intern", "l=India", "fromage=3", "sort=date"} {
		if !strings.Contains(got, part) {
			t.Fatalf("url %q missing %q", got, part)
		}
	}
}

func TestIndeedParse(t *testing.T) {
	html := `<html><body>
<div class="job_seen_beacon">
  <h2 class="jobTitle"><a data-jk="abc123"><span>AI Intern</span></a></h2>
  <span class="companyName">Acme AI</span>
  <div class="companyLocation">Remote in Bengaluru</div>
</div>
<div class="job_seen_beacon">
  <h2 class="jobTitle"><a data-jk="def456"><span>Data Intern</span></a></h2>
  <span class="companyName">OnSite Co</span>
  <div class="companyLocation">Mumbai, Maharashtra</div>
</div>
<div class="job_seen_beacon">
  <h2 class="jobTitle"><a><span>Hybrid Intern</span></a></h2>
  <div class="companyLocation">Hybrid work in Pune</div>
</div>
</body></html>`

	scraper := &Indeed{logger: zerolog.Nop(), runDate: "2024-03-09"}
	postings := scraper.parse(mustDoc(t, html), "AI Intern")

	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d: %+v", len(postings), postings)
	}

	first := postings[0]
	if first.Link != "https://in.indeed.com/viewjob?jk=abc123" {
		t.Fatalf("unexpected link: %q", first.Link)
	}
	if first.Stipend != "Check Link" {
		t.Fatalf("Stipend = %q, want Check Link", first.Stipend)
	}
	if first.Source != "Indeed India" || first.Category != "AI Intern" {
		t.Fatalf("context fields wrong: %+v", first)
	}

	// No data-jk means no identity, but the posting is still emitted; the
	// merge step drops it before persistence.
	second := postings[1]
	if second.Title != "Hybrid Intern" || second.Link != "N/A" || second.Company != "N/A" {
		t.Fatalf("unexpected second posting: %+v", second)
	}
}

func TestIndeedParseDefaultsLocationToIndia(t *testing.T) {
	html := `<html><body>
<div class="job_seen_beacon">
  <h2 class="jobTitle"><a data-jk="xyz"><span>NLP Intern</span></a></h2>
  <span class="companyName">Acme</span>
</div>
</body></html>`

	scraper := &Indeed{logger: zerolog.Nop(), runDate: "2024-03-09"}
	postings := scraper.parse(mustDoc(t, html), "NLP Intern")

	// The "India" default is not a remote keyword, so the card is excluded.
	if len(postings) != 0 {
		t.Fatalf("expected location default to exclude posting, got %+v", postings)
	}
}
