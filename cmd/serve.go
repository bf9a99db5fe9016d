package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/lifedash/networth"
	"github.com/lifedash/networth/api"
)

type serveCmd struct {
	addr     string
	offline  bool
	currency string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the net worth series over HTTP" }
func (*serveCmd) Usage() string {
	return `serve [-addr <host:port>] [-offline]

  Starts an HTTP server exposing the computed series, the assets and the
  investments as JSON. Market data is fetched once at startup.

Usage Examples:
$ nwd serve -addr :8080
$ curl localhost:8080/api/v1/series?currency=EUR
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:8080", "address to listen on")
	f.BoolVar(&c.offline, "offline", false, "do not fetch market data at startup")
	f.StringVar(&c.currency, "currency", "", "base currency used for rate fetching, defaults to the portfolio's first")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}
	cfg, err := LoadProjectionConfig()
	if err != nil {
		return fail("Error loading projection: %v", err)
	}

	base := strings.ToUpper(c.currency)
	if base == "" {
		if currencies := p.Currencies(); len(currencies) > 0 {
			base = currencies[0]
		}
	}

	prices := make(networth.PriceTable)
	rates := networth.NewRates(base, nil)
	if !c.offline && p.Len() > 0 {
		var errs []error
		prices, errs = networth.FetchPrices(p.Symbols(), p.OldestInvestmentDate(), networth.Today())
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		if prices == nil {
			prices = make(networth.PriceTable)
		}
		rates, errs = networth.FetchRates(base, p.Currencies())
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	handler := api.NewHandler(DataPath(), prices, rates, cfg)
	router := api.SetupRoutes(handler)

	log.Printf("serving on http://%s", c.addr)
	if err := http.ListenAndServe(c.addr, router); err != nil {
		return fail("Error: %v", err)
	}
	return subcommands.ExitSuccess
}
