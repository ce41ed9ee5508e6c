package cmd

import (
	"github.com/alecthomas/kong"
	"github.com/skjoshi/internscout/internal/scraper"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version     VersionCmd `cmd:"" help:"Print version."`
	Config      ConfigCmd  `cmd:"" help:"Manage configuration."`
	Run         RunCmd     `cmd:"" help:"Scrape all sources and append new postings to the sheet."`
	Internshala SiteCmd    `cmd:"" name:"internshala" help:"Scrape Internshala only and print results."`
	Indeed      SiteCmd    `cmd:"" name:"indeed" help:"Scrape Indeed India only and print results."`
	Proxies     ProxiesCmd `cmd:"" help:"Proxy utilities."`
}

func NewCLI() *CLI {
	return &CLI{
		Internshala: SiteCmd{Site: scraper.SiteInternshala},
		Indeed:      SiteCmd{Site: scraper.SiteIndeed},
	}
}
