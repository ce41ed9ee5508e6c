package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/skjoshi/internscout/internal/filter"
	"github.com/skjoshi/internscout/internal/models"
	"github.com/skjoshi/internscout/internal/network"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	internshalaBase   = "https://internshala.com"
	sourceInternshala = "Internshala"
)

// Internshala scrapes internshala.com category pages. Query terms are
// category slugs ("data-analytics") encoded as a URL path segment.
type Internshala struct {
	client  *network.Client
	logger  zerolog.Logger
	runDate string
}

func NewInternshala(client *network.Client, logger zerolog.Logger, runDate string) *Internshala {
	return &Internshala{client: client, logger: logger, runDate: runDate}
}

func (i *Internshala) Name() string {
	return SiteInternshala
}

func (i *Internshala) Fetch(ctx context.Context, term string) ([]models.Posting, error) {
	target := buildInternshalaURL(term)
	doc, err := fetchDocument(ctx, i.client, target, nil)
	if err != nil {
		if errors.Is(err, errHTTPStatus) {
			i.logger.Warn().Str("url", target).Err(err).Msg("internshala fetch degraded to empty")
			return nil, nil
		}
		return nil, fmt.Errorf("internshala %q: %w", term, err)
	}
	return i.parse(doc, term), nil
}

func buildInternshalaURL(term string) string {
	return fmt.Sprintf("%s/internships/%s-internship/", internshalaBase, url.PathEscape(term))
}

func (i *Internshala) parse(doc *goquery.Document, term string) []models.Posting {
	category := internshalaCategory(term)
	var postings []models.Posting

	doc.Find("div.internship_meta").EachWithBreak(func(index int, s *goquery.Selection) bool {
		if index >= maxItemsPerTerm {
			return false
		}

		raw := rawPosting{
			Title:    cleanText(s.Find("h3.heading_4_5").First().Text()),
			Company:  cleanText(s.Find("p.company_name").First().Text()),
			Location: cleanText(s.Find("div[id*='location']").First().Text()),
			Stipend:  cleanText(s.Find("span.stipend").First().Text()),
		}
		if raw.Title == "" {
			i.logger.Debug().Int("index", index).Str("term", term).Msg("internshala card without title skipped")
			return true
		}
		if href, ok := s.Find("a.view_detail_button").First().Attr("href"); ok {
			raw.Link = absoluteURL(internshalaBase, href)
		}

		posting := normalizePosting(raw, sourceDefaults{Location: "Remote", Stipend: "Unpaid"}, sourceInternshala, category, i.runDate)
		if !filter.RemoteEligible(posting.Location) {
			return true
		}
		postings = append(postings, posting)
		return true
	})

	return postings
}

// internshalaCategory turns a category slug into its display label, e.g.
// "data-analytics" -> "Data Analytics".
func internshalaCategory(term string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(term, "-", " "))
}
