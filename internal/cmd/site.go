package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/skjoshi/internscout/internal/aggregate"
	"github.com/skjoshi/internscout/internal/export"
	"github.com/skjoshi/internscout/internal/models"
	"github.com/skjoshi/internscout/internal/scraper"
)

// SiteCmd scrapes a single source and prints the postings without touching
// the store.
type SiteCmd struct {
	Terms string `arg:"" optional:"" help:"Comma-separated query terms (default: configured list)."`
	OutputOptions
	Site string `kong:"-"`
}

type OutputOptions struct {
	Format  string `help:"Output format: csv, json, md, tsv." enum:",csv,json,md,tsv" default:""`
	Output  string `name:"output" short:"o" help:"Write output to a file."`
	Proxies string `help:"Comma-separated proxy URLs." env:"INTERNSCOUT_PROXIES"`
}

func (s *SiteCmd) Run(ctx *Context) error {
	registry, err := newRegistry(ctx, s.Proxies)
	if err != nil {
		return err
	}
	source, ok := registry[s.Site]
	if !ok {
		return fmt.Errorf("unknown site: %s", s.Site)
	}

	terms := splitTerms(s.Terms)
	if len(terms) == 0 {
		terms = defaultTerms(ctx, s.Site)
	}
	if len(terms) == 0 {
		return fmt.Errorf("at least one query term is required")
	}

	driver := &aggregate.Driver{
		Sources: []aggregate.Source{{Scraper: source, Terms: terms}},
		Delay:   time.Duration(ctx.Config.FetchDelaySeconds) * time.Second,
		Logger:  ctx.Logger,
	}

	postings, stats := driver.Run(context.Background())
	if err := writePostings(ctx, postings, s.OutputOptions); err != nil {
		return err
	}
	printRunSummary(ctx, stats, len(postings), 0, true)
	return nil
}

func defaultTerms(ctx *Context, site string) []string {
	switch site {
	case scraper.SiteInternshala:
		return ctx.Config.InternshalaCategories
	case scraper.SiteIndeed:
		return ctx.Config.IndeedQueries
	default:
		return nil
	}
}

func splitTerms(raw string) []string {
	parts := strings.Split(raw, ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		term := strings.TrimSpace(part)
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

func writePostings(ctx *Context, postings []models.Posting, opts OutputOptions) error {
	outputPath := strings.TrimSpace(opts.Output)
	format, err := resolveFormat(ctx, opts.Format, outputPath)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := outputPath == "" && ctx.UI != nil && ctx.UI.ColorEnabled
	return export.WritePostings(writer, postings, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(writer),
	})
}

func resolveFormat(ctx *Context, requested string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if requested != "" {
		return parseFormat(requested)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
