package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an investment by id" }
func (*rmCmd) Usage() string {
	return `rm <id>...

  Deletes investments from the portfolio file.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return fail("Error: at least one investment id is required")
	}
	p, err := LoadPortfolio()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}
	for _, id := range f.Args() {
		if !p.Remove(id) {
			return fail("Error: no investment %q", id)
		}
	}
	if err := SavePortfolio(p); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("removed %d investment(s)\n", f.NArg())
	return subcommands.ExitSuccess
}
