package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/subcommands"
	"github.com/lifedash/networth"
)

// ConfigFile is the name of the projection file inside the data folder.
const ConfigFile = "projection.toml"

// projectionFile is the TOML shape of the projection configuration.
type projectionFile struct {
	End      string `toml:"end,omitempty"`
	Currency string `toml:"currency,omitempty"`

	Monthly     float64 `toml:"monthly,omitempty"`
	Progressive bool    `toml:"progressive,omitempty"`
	Growth      float64 `toml:"growth,omitempty"`

	Targets  map[string]float64 `toml:"targets,omitempty"`
	Selected []string           `toml:"selected,omitempty"`
}

// LoadProjectionConfig reads the projection configuration from the app data
// folder. A missing file means no projection.
func LoadProjectionConfig() (networth.ProjectionConfig, error) {
	var file projectionFile
	path := filepath.Join(DataPath(), ConfigFile)
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return networth.ProjectionConfig{}, nil
		}
		return networth.ProjectionConfig{}, fmt.Errorf("could not read %q: %w", path, err)
	}
	return file.config()
}

func (file projectionFile) config() (networth.ProjectionConfig, error) {
	cfg := networth.ProjectionConfig{
		Funding: networth.FundingPlan{
			Enabled:      file.Monthly != 0,
			Monthly:      networth.M(file.Monthly, file.Currency),
			Progressive:  file.Progressive,
			AnnualGrowth: file.Growth,
		},
		Selected: file.Selected,
	}
	if file.End != "" {
		end, err := networth.ParseDate(file.End)
		if err != nil {
			return cfg, fmt.Errorf("invalid end date: %w", err)
		}
		cfg.End = end
	}
	if len(file.Targets) > 0 {
		cfg.TargetPrices = make(map[string]networth.Money, len(file.Targets))
		for id, price := range file.Targets {
			cfg.TargetPrices[id] = networth.M(price, file.Currency)
		}
	}
	return cfg, nil
}

// saveProjectionFile writes the projection configuration into the app data folder.
func saveProjectionFile(file projectionFile) error {
	if err := os.MkdirAll(DataPath(), 0755); err != nil {
		return err
	}
	path := filepath.Join(DataPath(), ConfigFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(file)
}

// loadProjectionFile reads the raw TOML file, for editing.
func loadProjectionFile() (projectionFile, error) {
	var file projectionFile
	path := filepath.Join(DataPath(), ConfigFile)
	if _, err := toml.DecodeFile(path, &file); err != nil && !os.IsNotExist(err) {
		return file, fmt.Errorf("could not read %q: %w", path, err)
	}
	return file, nil
}

type configCmd struct {
	end         string
	currency    string
	monthly     float64
	growth      float64
	progressive bool
	target      string
	selected    string
	clear       bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or edit the projection configuration" }
func (*configCmd) Usage() string {
	return `config [-end <date>] [-monthly <amount>] [-growth <rate>] [-target <id=price,...>] [-select <id,...>] [-clear]

  Without flags, shows the current projection configuration.
  With flags, updates it. The end date accepts relative forms like +5y.

Usage Examples:
# Project five years out with 500 a month.
$ nwd config -end +5y -monthly 500

# Assume vti reaches 280 by the end date.
$ nwd config -target vti=280
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.end, "end", "", "projection end date (ISO or relative like +5y), empty to keep")
	f.StringVar(&c.currency, "currency", "", "currency of monthly amounts and target prices")
	f.Float64Var(&c.monthly, "monthly", 0, "monthly funding amount, 0 to keep")
	f.Float64Var(&c.growth, "growth", 0, "annual growth rate of the monthly amount (e.g. 0.05)")
	f.BoolVar(&c.progressive, "progressive", false, "grow the monthly amount each month")
	f.StringVar(&c.target, "target", "", "comma separated id=price target prices")
	f.StringVar(&c.selected, "select", "", "comma separated asset ids to keep in the breakdown, \"all\" to reset")
	f.BoolVar(&c.clear, "clear", false, "drop the whole projection configuration")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.clear {
		if err := saveProjectionFile(projectionFile{}); err != nil {
			return fail("Error clearing configuration: %v", err)
		}
		fmt.Println("projection configuration cleared")
		return subcommands.ExitSuccess
	}

	file, err := loadProjectionFile()
	if err != nil {
		return fail("Error: %v", err)
	}

	edited := false
	if c.end != "" {
		// validate early, store the resolved date
		end, err := networth.ParseDate(c.end)
		if err != nil {
			return fail("Error: %v", err)
		}
		file.End = end.String()
		edited = true
	}
	if c.currency != "" {
		file.Currency = strings.ToUpper(c.currency)
		edited = true
	}
	if c.monthly != 0 {
		file.Monthly = c.monthly
		edited = true
	}
	if c.growth != 0 {
		file.Growth = c.growth
		file.Progressive = true
		edited = true
	}
	if c.progressive {
		file.Progressive = true
		edited = true
	}
	if c.target != "" {
		if file.Targets == nil {
			file.Targets = make(map[string]float64)
		}
		for _, pair := range strings.Split(c.target, ",") {
			id, price, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok {
				return fail("Error: invalid target %q, want id=price", pair)
			}
			v, err := strconv.ParseFloat(price, 64)
			if err != nil {
				return fail("Error: invalid target price %q: %v", price, err)
			}
			file.Targets[id] = v
		}
		edited = true
	}
	if c.selected != "" {
		if c.selected == "all" {
			file.Selected = nil
		} else {
			file.Selected = strings.Split(c.selected, ",")
			for i := range file.Selected {
				file.Selected[i] = strings.TrimSpace(file.Selected[i])
			}
		}
		edited = true
	}

	if edited {
		if _, err := file.config(); err != nil {
			return fail("Error: %v", err)
		}
		if err := saveProjectionFile(file); err != nil {
			return fail("Error saving configuration: %v", err)
		}
	}

	out, err := os.ReadFile(filepath.Join(DataPath(), ConfigFile))
	if os.IsNotExist(err) {
		fmt.Println("no projection configured")
		return subcommands.ExitSuccess
	}
	if err != nil {
		return fail("Error: %v", err)
	}
	fmt.Print(string(out))
	return subcommands.ExitSuccess
}
