package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestBuildInternshalaURL(t *testing.T) {
	got := buildInternshalaURL("data-analytics")
	want := "https://internshala.com/internships/data-analytics-internship/"
	if got != want {
		t.Fatalf("buildInternshalaURL() = %q, want %q", got, want)
	}
}

func TestInternshalaCategory(t *testing.T) {
	cases := []struct {
		term string
		want string
	}{
		{"data-analytics", "Data Analytics"},
		{"machine-learning", "Machine Learning"},
		{"nlp", "Nlp"},
	}
	for _, tc := range cases {
		if got := internshalaCategory(tc.term); got != tc.want {
			t.Fatalf("internshalaCategory(%q) = %q, want %q", tc.term, got, tc.want)
		}
	}
}

func internshalaCard(title, company, location, stipend, href string) string {
	var b strings.Builder
	b.WriteString(`<div class="internship_meta">`)
	if title != "" {
		fmt.Fprintf(&b, `<h3 class="heading_4_5">%s</h3>`, title)
	}
	if company != "" {
		fmt.Fprintf(&b, `<p class="company_name">%s</p>`, company)
	}
	if location != "" {
		fmt.Fprintf(&b, `<div id="location_names">%s</div>`, location)
	}
	if stipend != "" {
		fmt.Fprintf(&b, `<span class="stipend">%s</span>`, stipend)
	}
	if href != "" {
		fmt.Fprintf(&b, `<a class="view_detail_button" href="%s">View</a>`, href)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func TestInternshalaParse(t *testing.T) {
	html := "<html><body>" +
		internshalaCard("Data Analytics Intern", "Acme", "Work From Home", "5000 /month", "/internship/detail/da-1") +
		internshalaCard("Data Analytics Intern", "OnSite Co", "Bangalore", "8000 /month", "/internship/detail/da-2") +
		internshalaCard("", "Ghost Co", "Remote", "", "/internship/detail/da-3") +
		internshalaCard("Unpaid Intern", "Startup", "", "", "") +
		"</body></html>"

	scraper := &Internshala{logger: zerolog.Nop(), runDate: "2024-03-09"}
	postings := scraper.parse(mustDoc(t, html), "data-analytics")

	// Bangalore is filtered, the title-less card is skipped, and the card
	// with no location defaults to "Remote" and stays eligible.
	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d: %+v", len(postings), postings)
	}

	first := postings[0]
	if first.Link != "https://internshala.com/internship/detail/da-1" {
		t.Fatalf("unexpected link: %q", first.Link)
	}
	if first.Source != "Internshala" || first.Category != "Data Analytics" || first.Date != "2024-03-09" {
		t.Fatalf("context fields wrong: %+v", first)
	}

	second := postings[1]
	if second.Location != "Remote" || second.Stipend != "Unpaid" || second.Link != "N/A" {
		t.Fatalf("defaults not applied: %+v", second)
	}
}

func TestInternshalaParseCapsItems(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		b.WriteString(internshalaCard(fmt.Sprintf("Intern %d", i), "Acme", "Remote", "", fmt.Sprintf("/internship/detail/%d", i)))
	}
	b.WriteString("</body></html>")

	scraper := &Internshala{logger: zerolog.Nop(), runDate: "2024-03-09"}
	postings := scraper.parse(mustDoc(t, b.String()), "data-analytics")

	if len(postings) != maxItemsPerTerm {
		t.Fatalf("expected cap at %d postings, got %d", maxItemsPerTerm, len(postings))
	}
}
