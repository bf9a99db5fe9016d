package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/lifedash/networth"
	"github.com/lifedash/networth/renderer"
)

type seriesCmd struct {
	offline   bool
	currency  string
	breakdown bool
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display the net worth series" }
func (*seriesCmd) Usage() string {
	return `series [-offline] [-currency <cur>] [-no-breakdown]

  Computes and displays the net worth over time: market values for the
  past, the live value today, and the projected path when a projection is
  configured.

Usage Examples:
# Full series with per-asset columns.
$ nwd series

# Without touching the network; holdings with no cached price fall back
# to their recorded amounts.
$ nwd series -offline
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "do not fetch market data")
	f.StringVar(&c.currency, "currency", "", "convert displayed amounts into this currency")
	f.BoolVar(&c.breakdown, "no-breakdown", false, "omit the per-asset columns")
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, _, err := computeSeries(c.offline, c.currency)
	if err != nil {
		return fail("Error: %v", err)
	}
	printMarkdown(renderer.RenderSeries(s, renderer.SeriesRenderOptions{SkipBreakdown: c.breakdown}))
	return subcommands.ExitSuccess
}

// computeSeries is the shared pipeline of the report commands: load the
// portfolio and projection, fetch market data unless offline, compute, and
// optionally convert for display.
func computeSeries(offline bool, currency string) (*networth.Series, networth.ProjectionConfig, networth.Date, error) {
	today := networth.Today()

	p, err := LoadPortfolio()
	if err != nil {
		return nil, networth.ProjectionConfig{}, today, err
	}
	cfg, err := LoadProjectionConfig()
	if err != nil {
		return nil, cfg, today, err
	}

	prices := make(networth.PriceTable)
	if !offline && p.Len() > 0 {
		fetched, errs := networth.FetchPrices(p.Symbols(), p.OldestInvestmentDate(), today)
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		if fetched != nil {
			prices = fetched
		}
	}

	s := networth.ComputeSeries(p, prices, cfg, today)

	if currency != "" {
		currency = strings.ToUpper(currency)
		rates := networth.NewRates(currency, nil)
		if !offline {
			var errs []error
			rates, errs = networth.FetchRates(currency, p.Currencies())
			for _, err := range errs {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
		s = s.Convert(rates, currency)
	}
	return s, cfg, today, nil
}
