package scraper

import (
	"testing"

	"github.com/skjoshi/internscout/internal/models"
)

func TestNormalizePostingDefaults(t *testing.T) {
	raw := rawPosting{Title: "Data Science Intern"}
	defaults := sourceDefaults{Location: "Remote", Stipend: "Unpaid"}

	got := normalizePosting(raw, defaults, sourceInternshala, "Data Science", "2024-03-09")

	if got.Company != models.CompanyUnknown {
		t.Fatalf("Company = %q, want %q", got.Company, models.CompanyUnknown)
	}
	if got.Location != "Remote" {
		t.Fatalf("Location = %q, want Remote", got.Location)
	}
	if got.Stipend != "Unpaid" {
		t.Fatalf("Stipend = %q, want Unpaid (never empty)", got.Stipend)
	}
	if got.Link != models.LinkNone {
		t.Fatalf("Link = %q, want %q", got.Link, models.LinkNone)
	}
	if got.Source != sourceInternshala || got.Category != "Data Science" || got.Date != "2024-03-09" {
		t.Fatalf("context fields not stamped: %+v", got)
	}
}

func TestNormalizePostingKeepsExtractedFields(t *testing.T) {
	raw := rawPosting{
		Title:    "ML Intern",
		Company:  "Acme Labs",
		Location: "Work From Home",
		Stipend:  "10000 /month",
		Link:     "https://internshala.com/internship/detail/ml-1",
	}

	got := normalizePosting(raw, sourceDefaults{Location: "Remote", Stipend: "Unpaid"}, sourceInternshala, "Machine Learning", "2024-03-09")

	if got.Company != "Acme Labs" || got.Location != "Work From Home" || got.Stipend != "10000 /month" {
		t.Fatalf("extracted fields overwritten: %+v", got)
	}
	if !got.HasLink() {
		t.Fatalf("expected usable link, got %q", got.Link)
	}
}
