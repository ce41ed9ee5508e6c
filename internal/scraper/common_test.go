package scraper

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestCleanText(t *testing.T) {
	got := cleanText("  Data\tAnalytics \n Intern &amp; more ")
	want := "Data Analytics Intern & more"
	if got != want {
		t.Fatalf("cleanText() = %q, want %q", got, want)
	}
}

func TestAbsoluteURL(t *testing.T) {
	base := "https://internshala.com"
	cases := []struct {
		href string
		want string
	}{
		{"/internship/detail/abc123", "https://internshala.com/internship/detail/abc123"},
		{"https://other.com/a", "https://other.com/a"},
		{"//cdn.internshala.com/asset", "https://cdn.internshala.com/asset"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := absoluteURL(base, tc.href); got != tc.want {
			t.Fatalf("absoluteURL(%q) = %q, want %q", tc.href, got, tc.want)
		}
	}
}

func TestRunDate(t *testing.T) {
	now := time.Date(2024, 3, 9, 23, 55, 0, 0, time.UTC)
	if got := RunDate(now); got != "2024-03-09" {
		t.Fatalf("RunDate() = %q, want 2024-03-09", got)
	}
}
