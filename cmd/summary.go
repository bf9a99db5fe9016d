package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/lifedash/networth/renderer"
)

type summaryCmd struct {
	offline  bool
	currency string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display today's net worth and the projected figure" }
func (*summaryCmd) Usage() string {
	return `summary [-offline] [-currency <cur>]

  Displays the two headline figures and today's per-asset breakdown.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "do not fetch market data")
	f.StringVar(&c.currency, "currency", "", "convert displayed amounts into this currency")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, today, err := computeSeries(c.offline, c.currency)
	if err != nil {
		return fail("Error: %v", err)
	}
	printMarkdown(renderer.RenderSummary(s, cfg, today))
	return subcommands.ExitSuccess
}
