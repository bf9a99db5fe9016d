package networth

import (
	"fmt"
	"iter"
	"sort"
)

// Portfolio is the chronologically sorted list of investments, together with
// the assets they reference.
type Portfolio struct {
	investments []Investment
}

// NewPortfolio creates a portfolio from a list of investments, in
// chronological order.
func NewPortfolio(investments ...Investment) *Portfolio {
	p := &Portfolio{}
	p.Append(investments...)
	return p
}

// Append appends investments to the portfolio and maintains the
// chronological order.
func (p *Portfolio) Append(investments ...Investment) {
	p.investments = append(p.investments, investments...)
	p.stableSort()
}

// stableSort sorts the portfolio by purchase date. The sort is stable,
// meaning investments on the same day maintain their original relative order.
func (p *Portfolio) stableSort() {
	sort.SliceStable(p.investments, func(i, j int) bool {
		return p.investments[i].PurchaseDate.Before(p.investments[j].PurchaseDate)
	})
}

// Len returns the number of investments.
func (p *Portfolio) Len() int { return len(p.investments) }

// Investments returns an iterator that yields each investment in
// chronological order. Investments must pass all the given filters.
func (p *Portfolio) Investments(filters ...func(Investment) bool) iter.Seq2[int, Investment] {
	return func(yield func(int, Investment) bool) {
		for i, v := range p.investments {
			accept := true
			for _, filter := range filters {
				if !filter(v) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// OnOrBefore filters investments purchased on or before the given date.
func OnOrBefore(on Date) func(Investment) bool {
	return func(v Investment) bool { return !on.Before(v.PurchaseDate) }
}

// ByAsset filters investments in the given asset.
func ByAsset(id string) func(Investment) bool {
	return func(v Investment) bool { return v.Asset.ID == id }
}

// Assets returns an iterator over the distinct assets referenced by the
// portfolio, in order of first appearance.
func (p *Portfolio) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		seen := make(map[string]bool)
		for _, v := range p.investments {
			if seen[v.Asset.ID] {
				continue
			}
			seen[v.Asset.ID] = true
			if !yield(v.Asset) {
				return
			}
		}
	}
}

// Asset returns the asset with the given id, or false if the portfolio has
// no investment in it.
func (p *Portfolio) Asset(id string) (Asset, bool) {
	for _, v := range p.investments {
		if v.Asset.ID == id {
			return v.Asset, true
		}
	}
	return Asset{}, false
}

// Remove deletes the investment with the given id. It reports whether an
// investment was removed.
func (p *Portfolio) Remove(id string) bool {
	for i, v := range p.investments {
		if v.ID == id {
			p.investments = append(p.investments[:i], p.investments[i+1:]...)
			return true
		}
	}
	return false
}

// OldestInvestmentDate returns the date of the earliest investment. It
// returns the zero date when the portfolio is empty.
func (p *Portfolio) OldestInvestmentDate() Date {
	if len(p.investments) == 0 {
		return Date{}
	}
	return p.investments[0].PurchaseDate
}

// InvestmentDates returns the sorted distinct purchase dates.
func (p *Portfolio) InvestmentDates() []Date {
	var dates []Date
	var last Date
	for _, v := range p.investments {
		if v.PurchaseDate != last {
			dates = append(dates, v.PurchaseDate)
			last = v.PurchaseDate
		}
	}
	return dates
}

// Symbols returns the distinct uppercase ticker symbols that need a price
// series: currency-like assets and assets without a symbol are skipped.
func (p *Portfolio) Symbols() []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, v := range p.investments {
		if v.Asset.IsCurrency || v.Asset.Symbol == "" {
			continue
		}
		if seen[v.Asset.Symbol] {
			continue
		}
		seen[v.Asset.Symbol] = true
		symbols = append(symbols, v.Asset.Symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Currencies returns the distinct currency codes the portfolio records
// amounts in, sorted.
func (p *Portfolio) Currencies() []string {
	seen := make(map[string]bool)
	var currencies []string
	for _, v := range p.investments {
		cur := v.PurchasePrice.Currency()
		if cur == "" || seen[cur] {
			continue
		}
		seen[cur] = true
		currencies = append(currencies, cur)
	}
	sort.Strings(currencies)
	return currencies
}

// Validate checks an investment before it is appended.
func (p *Portfolio) Validate(v Investment) error {
	if v.ID == "" {
		return fmt.Errorf("investment has no id")
	}
	if v.Asset.ID == "" {
		return fmt.Errorf("investment %s has no asset", v.ID)
	}
	if v.PurchaseDate.IsZero() {
		return fmt.Errorf("investment %s has no date", v.ID)
	}
	if v.Quantity.IsZero() && v.TotalCost.IsZero() {
		return fmt.Errorf("investment %s has neither quantity nor total cost", v.ID)
	}
	return nil
}
