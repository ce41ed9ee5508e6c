package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/skjoshi/internscout/internal/filter"
	"github.com/skjoshi/internscout/internal/models"
	"github.com/skjoshi/internscout/internal/network"
)

const (
	indeedBase   = "https://in.indeed.com"
	sourceIndeed = "Indeed India"
)

// Indeed scrapes in.indeed.com search results. Query terms are passed as
// query parameters, restricted to India and the last three days.
type Indeed struct {
	client  *network.Client
	logger  zerolog.Logger
	runDate string
}

func NewIndeed(client *network.Client, logger zerolog.Logger, runDate string) *Indeed {
	return &Indeed{client: client, logger: logger, runDate: runDate}
}

func (n *Indeed) Name() string {
	return SiteIndeed
}

func (n *Indeed) Fetch(ctx context.Context, term string) ([]models.Posting, error) {
	target := buildIndeedURL(term)
	doc, err := fetchDocument(ctx, n.client, target, nil)
	if err != nil {
		if errors.Is(err, errHTTPStatus) {
			n.logger.Warn().Str("url", target).Err(err).Msg("indeed fetch degraded to empty")
			return nil, nil
		}
		return nil, fmt.Errorf("indeed %q: %w", term, err)
	}
	return n.parse(doc, term), nil
}

func buildIndeedURL(term string) string {
	values := url.Values{}
	values.Set("q", term)
	values.Set("l", "India")
	values.Set("fromage", "3")
	values.Set("sort", "date")
	return fmt.Sprintf("%s/jobs?%s", indeedBase, values.Encode())
}

func (n *Indeed) parse(doc *goquery.Document, term string) []models.Posting {
	var postings []models.Posting

	doc.Find("div.job_seen_beacon").EachWithBreak(func(index int, s *goquery.Selection) bool {
		if index >= maxItemsPerTerm {
			return false
		}

		title := s.Find("h2.jobTitle").First()
		raw := rawPosting{
			Title:    cleanText(title.Text()),
			Company:  cleanText(s.Find("span.companyName").First().Text()),
			Location: cleanText(s.Find("div.companyLocation").First().Text()),
		}
		if raw.Title == "" {
			n.logger.Debug().Int("index", index).Str("term", term).Msg("indeed card without title skipped")
			return true
		}
		if jobID, ok := title.Find("a").First().Attr("data-jk"); ok && jobID != "" {
			raw.Link = fmt.Sprintf("%s/viewjob?jk=%s", indeedBase, jobID)
		}

		// Indeed never exposes compensation on the result card.
		posting := normalizePosting(raw, sourceDefaults{Location: "India", Stipend: "Check Link"}, sourceIndeed, term, n.runDate)
		if !filter.RemoteEligible(posting.Location) {
			return true
		}
		postings = append(postings, posting)
		return true
	})

	return postings
}
