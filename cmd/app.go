// Package cmd implements the CLI application to track and project net worth.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lifedash/networth"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "portfolio")
	c.Register(&rmCmd{}, "portfolio")
	c.Register(&updateCmd{}, "portfolio")

	c.Register(&seriesCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&configCmd{}, "projection")

	c.Register(&serveCmd{}, "server")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data-path", ".networth", "Path to the folder holding the portfolio and projection files")

// DataPath returns the data folder selected on the command line.
func DataPath() string { return *dataPath }

// LoadPortfolio loads the portfolio from the app data folder.
func LoadPortfolio() (*networth.Portfolio, error) {
	return networth.LoadPortfolio(DataPath())
}

// SavePortfolio saves the portfolio into the app data folder.
func SavePortfolio(p *networth.Portfolio) error {
	return networth.SavePortfolio(DataPath(), p)
}

// fail prints an error and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
