package scraper

import (
	"github.com/rs/zerolog"
	"github.com/skjoshi/internscout/internal/network"
)

const (
	SiteInternshala = "internshala"
	SiteIndeed      = "indeed"
)

// Registry builds one scraper per source, each with its own client so
// cookies never leak across sites. runDate is stamped on every posting the
// scrapers emit.
func Registry(rotator *network.Rotator, logger zerolog.Logger, runDate string) (map[string]Scraper, error) {
	internshala, err := network.NewClient(rotator)
	if err != nil {
		return nil, err
	}
	indeed, err := network.NewClient(rotator)
	if err != nil {
		return nil, err
	}

	return map[string]Scraper{
		SiteInternshala: NewInternshala(internshala, logger, runDate),
		SiteIndeed:      NewIndeed(indeed, logger, runDate),
	}, nil
}
