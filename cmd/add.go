package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/lifedash/networth"
)

type addCmd struct {
	asset    string
	name     string
	symbol   string
	quote    string
	color    string
	cash     bool
	date     string
	quantity float64
	price    float64
	cost     float64
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a purchase, sale or cash holding" }
func (*addCmd) Usage() string {
	return `add -asset <id> -date <date> -quantity <q> -price <p> [-cost <total>] [-currency <cur>]

  Records an investment. A negative quantity or price records a sale.
  With -cash the record is a cash-style holding worth its -cost amount
  at all times.

Usage Examples:
# Buy 10 shares.
$ nwd add -asset vti -symbol VTI -name "Total Stock Market" -date 2025-01-02 -quantity 10 -price 100 -currency USD

# Hold 5000 in cash.
$ nwd add -asset usd -cash -date 2025-01-02 -cost 5000 -currency USD

# Sell 4 shares.
$ nwd add -asset vti -date -1d -quantity -4 -price 120 -currency USD
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset id the record belongs to")
	f.StringVar(&c.name, "name", "", "asset display name, kept from the first record if empty")
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol for market data lookups")
	f.StringVar(&c.quote, "quote", "", "ls-tc.de instrument id for live quotes")
	f.StringVar(&c.color, "color", "", "fixed chart color for the asset")
	f.BoolVar(&c.cash, "cash", false, "cash-style asset, valued at its recorded amount")
	f.StringVar(&c.date, "date", "0d", "purchase date (ISO or relative like -1d)")
	f.Float64Var(&c.quantity, "quantity", 0, "quantity bought, negative for a sale")
	f.Float64Var(&c.price, "price", 0, "per-unit purchase price")
	f.Float64Var(&c.cost, "cost", 0, "recorded total cost, preferred over price x quantity")
	f.StringVar(&c.currency, "currency", "", "currency of the amounts")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		return fail("Error: -asset is required")
	}
	on, err := networth.ParseDate(c.date)
	if err != nil {
		return fail("Error: %v", err)
	}

	p, err := LoadPortfolio()
	if err != nil {
		return fail("Error loading portfolio: %v", err)
	}

	asset := networth.Asset{
		ID:         c.asset,
		Symbol:     strings.ToUpper(c.symbol),
		Quote:      c.quote,
		Name:       c.name,
		Color:      c.color,
		IsCurrency: c.cash,
	}
	// keep the metadata of an already known asset unless overridden
	if known, ok := p.Asset(c.asset); ok {
		if asset.Name == "" {
			asset.Name = known.Name
		}
		if asset.Symbol == "" {
			asset.Symbol = known.Symbol
		}
		if asset.Quote == "" {
			asset.Quote = known.Quote
		}
		if asset.Color == "" {
			asset.Color = known.Color
		}
		asset.IsCurrency = asset.IsCurrency || known.IsCurrency
	}

	v := networth.Investment{
		ID:            uuid.NewString(),
		Asset:         asset,
		PurchaseDate:  on,
		Quantity:      networth.Q(c.quantity),
		PurchasePrice: networth.M(c.price, strings.ToUpper(c.currency)),
		TotalCost:     networth.M(c.cost, strings.ToUpper(c.currency)),
	}
	// derive the unit price from the total cost when only the cost is given
	if v.PurchasePrice.IsZero() && !v.TotalCost.IsZero() && !v.Quantity.IsZero() {
		v.PurchasePrice = v.TotalCost.Abs().Div(v.Quantity.Abs())
	}
	if err := p.Validate(v); err != nil {
		return fail("Error: %v", err)
	}
	p.Append(v)
	if err := SavePortfolio(p); err != nil {
		return fail("Error saving portfolio: %v", err)
	}
	fmt.Printf("recorded %s: %v\n", v.ID, v.Contribution())
	return subcommands.ExitSuccess
}
