package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"
	"github.com/skjoshi/internscout/internal/models"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

func WritePostings(w io.Writer, postings []models.Posting, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, postings)
	case FormatCSV:
		return writeCSV(w, postings, ',')
	case FormatTSV:
		return writeCSV(w, postings, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, postings)
	default:
		return writeTable(w, postings, opts)
	}
}

func writeJSON(w io.Writer, postings []models.Posting) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(postings)
}

func writeCSV(w io.Writer, postings []models.Posting, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(models.Header()); err != nil {
		return err
	}
	for _, posting := range postings {
		if err := writer.Write(posting.Row()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, postings []models.Posting, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "source\ttitle\tcompany\tstipend\tlink")
	output := termenv.NewOutput(w)
	for _, posting := range postings {
		fmt.Fprintln(tw, strings.Join(tableRow(posting, output, opts), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, postings []models.Posting) error {
	if len(postings) == 0 {
		_, err := fmt.Fprintln(w, "No postings.")
		return err
	}
	for _, posting := range postings {
		linkLine := "  Link: -"
		if posting.HasLink() {
			linkLine = fmt.Sprintf("  Link: [Open listing](<%s>)", posting.Link)
		}
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(posting.Title), safe(posting.Company)),
			fmt.Sprintf("  Location: %s", safe(posting.Location)),
			fmt.Sprintf("  Stipend: %s", safe(posting.Stipend)),
			linkLine,
			fmt.Sprintf("  Source: %s / %s", safe(posting.Source), safe(posting.Category)),
			fmt.Sprintf("  Captured: %s", safe(posting.Date)),
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func tableRow(posting models.Posting, output *termenv.Output, opts WriteOptions) []string {
	const linkColor = "#87CEEB"

	displayLink := "-"
	if posting.HasLink() {
		displayLink = shortLinkLabel(posting.Link)
		if opts.ColorEnabled {
			displayLink = output.String(displayLink).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			displayLink = hyperlink(posting.Link, displayLink)
		}
	}
	return []string{
		safe(posting.Source),
		safe(posting.Title),
		safe(posting.Company),
		safe(posting.Stipend),
		displayLink,
	}
}

func hyperlink(target string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + target + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortLinkLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
