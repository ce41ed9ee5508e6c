package scraper

import "github.com/skjoshi/internscout/internal/models"

// rawPosting holds the fields extracted from one item block, before any
// default substitution.
type rawPosting struct {
	Title    string
	Company  string
	Location string
	Stipend  string
	Link     string
}

// sourceDefaults are the sentinels a source substitutes for missing fields.
type sourceDefaults struct {
	Location string
	Stipend  string
}

// normalizePosting converts an extracted item into the canonical record.
// Defaults are applied here, before the eligibility filter runs, so that
// filtering behaves the same for every source. Pure; the adapter guarantees
// Title is non-empty.
func normalizePosting(raw rawPosting, defaults sourceDefaults, source, category, runDate string) models.Posting {
	company := raw.Company
	if company == "" {
		company = models.CompanyUnknown
	}
	location := raw.Location
	if location == "" {
		location = defaults.Location
	}
	stipend := raw.Stipend
	if stipend == "" {
		stipend = defaults.Stipend
	}
	link := raw.Link
	if link == "" {
		link = models.LinkNone
	}
	return models.Posting{
		Title:    raw.Title,
		Company:  company,
		Location: location,
		Stipend:  stipend,
		Link:     link,
		Source:   source,
		Date:     runDate,
		Category: category,
	}
}
