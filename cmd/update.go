package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lifedash/networth"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh live prices stored on the investments" }
func (*updateCmd) Usage() string {
	return `update

  Fetches the latest traded price for every investment whose asset has an
  ISIN-style symbol and stores it on the investment. Symbols that fail keep
  their previous price.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}
	if p.Len() == 0 {
		fmt.Println("nothing to update")
		return subcommands.ExitSuccess
	}
	errs := networth.RefreshCurrentPrices(p)
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := SavePortfolio(p); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Println("current prices refreshed")
	return subcommands.ExitSuccess
}
