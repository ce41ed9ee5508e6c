package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/skjoshi/internscout/internal/aggregate"
	"github.com/skjoshi/internscout/internal/config"
	"github.com/skjoshi/internscout/internal/merge"
	"github.com/skjoshi/internscout/internal/network"
	"github.com/skjoshi/internscout/internal/scraper"
	"github.com/skjoshi/internscout/internal/store"
)

type RunCmd struct {
	DryRun bool `help:"Scrape and print postings without touching the sheet."`
	OutputOptions
}

func (r *RunCmd) Run(ctx *Context) error {
	cfg := ctx.Config

	// Store configuration is validated before any network activity so a
	// misconfigured run never scrapes for nothing.
	var sheet store.Store
	if !r.DryRun {
		if strings.TrimSpace(cfg.SpreadsheetID) == "" {
			return fmt.Errorf("spreadsheet id is required: set %s or spreadsheet_id in config.json", config.EnvSpreadsheetID)
		}
		creds, err := config.LoadCredentials()
		if err != nil {
			return err
		}
		sheet, err = store.NewSheets(context.Background(), cfg.SpreadsheetID, creds)
		if err != nil {
			return err
		}
	}

	registry, err := newRegistry(ctx, r.Proxies)
	if err != nil {
		return err
	}

	driver := &aggregate.Driver{
		Sources: []aggregate.Source{
			{Scraper: registry[scraper.SiteInternshala], Terms: cfg.InternshalaCategories},
			{Scraper: registry[scraper.SiteIndeed], Terms: cfg.IndeedQueries},
		},
		Delay:  time.Duration(cfg.FetchDelaySeconds) * time.Second,
		Logger: ctx.Logger,
	}

	postings, stats := driver.Run(context.Background())

	if r.DryRun {
		if err := writePostings(ctx, postings, r.OutputOptions); err != nil {
			return err
		}
		printRunSummary(ctx, stats, len(postings), 0, true)
		return nil
	}

	added := 0
	if len(postings) > 0 {
		merger := &merge.Merger{
			Store:  sheet,
			Delay:  time.Duration(cfg.AppendDelaySeconds) * time.Second,
			Logger: ctx.Logger,
		}
		added, err = merger.Run(context.Background(), postings)
		if err != nil {
			return fmt.Errorf("update sheet (%d rows committed): %w", added, err)
		}
	}

	printRunSummary(ctx, stats, len(postings), added, false)
	return nil
}

func newRegistry(ctx *Context, proxiesFlag string) (map[string]scraper.Scraper, error) {
	proxies, err := config.LoadProxies(proxiesFlag)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
	}

	return scraper.Registry(rotator, ctx.Logger, scraper.RunDate(time.Now()))
}

func printRunSummary(ctx *Context, stats aggregate.Stats, found, added int, dryRun bool) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	fmt.Fprintln(ctx.Err, formatRunSummary(stats, found, added, dryRun))
}

func formatRunSummary(stats aggregate.Stats, found, added int, dryRun bool) string {
	sources := make([]string, 0, len(stats.FoundBySource))
	for source := range stats.FoundBySource {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	parts := make([]string, 0, len(sources))
	for _, source := range sources {
		parts = append(parts, fmt.Sprintf("%s:%d", source, stats.FoundBySource[source]))
	}

	bySource := "none"
	if len(parts) > 0 {
		bySource = strings.Join(parts, ", ")
	}

	summary := fmt.Sprintf("summary: found=%d by_source=%s", found, bySource)
	if stats.FailedTerms > 0 {
		summary += fmt.Sprintf(" failed_terms=%d", stats.FailedTerms)
	}
	if dryRun {
		return summary + " (dry run)"
	}
	return summary + fmt.Sprintf(" added=%d", added)
}
