package scraper

import (
	"context"

	"github.com/skjoshi/internscout/internal/models"
)

// Scraper fetches remote-eligible postings for one query term. A fetch that
// comes back with a non-success status yields an empty result, not an
// error; errors are reserved for transport and parse failures.
type Scraper interface {
	Name() string
	Fetch(ctx context.Context, term string) ([]models.Posting, error)
}
