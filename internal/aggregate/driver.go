package aggregate

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/skjoshi/internscout/internal/models"
	"github.com/skjoshi/internscout/internal/scraper"
)

// Source pairs a scraper with the query terms configured for it.
type Source struct {
	Scraper scraper.Scraper
	Terms   []string
}

// Stats summarizes one aggregation run.
type Stats struct {
	FoundBySource map[string]int
	FailedTerms   int
}

// Driver walks every source and term strictly in order, collecting eligible
// postings into one sequence. A failing fetch contributes zero postings and
// never aborts the run.
type Driver struct {
	Sources []Source
	Delay   time.Duration
	Sleep   func(time.Duration)
	Logger  zerolog.Logger
}

func (d *Driver) Run(ctx context.Context) ([]models.Posting, Stats) {
	sleep := d.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	stats := Stats{FoundBySource: make(map[string]int, len(d.Sources))}
	var postings []models.Posting

	for _, source := range d.Sources {
		name := source.Scraper.Name()
		if _, ok := stats.FoundBySource[name]; !ok {
			stats.FoundBySource[name] = 0
		}

		for _, term := range source.Terms {
			found, err := source.Scraper.Fetch(ctx, term)
			if err != nil {
				stats.FailedTerms++
				d.Logger.Warn().Str("source", name).Str("term", term).Err(err).Msg("fetch failed, term skipped")
			} else {
				postings = append(postings, found...)
				stats.FoundBySource[name] += len(found)
				d.Logger.Debug().Str("source", name).Str("term", term).Int("found", len(found)).Msg("term fetched")
			}

			// Courtesy pause toward the site before the next term.
			if d.Delay > 0 {
				sleep(d.Delay)
			}
		}
	}

	return postings, stats
}
