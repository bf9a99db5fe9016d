package networth

import "strings"

// priceLookbackDays is how many extra days PriceOn walks backward from the
// requested date before giving up: markets close on weekends and holidays,
// so the nearest end-of-day price can be a few days old.
const priceLookbackDays = 6

// PriceTable holds one end-of-day price history per uppercase ticker symbol.
type PriceTable map[string]*History[float64]

// Add records the price of a symbol on a given day.
func (t PriceTable) Add(symbol string, on Date, price float64) {
	symbol = strings.ToUpper(symbol)
	h := t[symbol]
	if h == nil {
		h = &History[float64]{}
		t[symbol] = h
	}
	h.Append(on, price)
}

// Merge appends all prices from another table.
func (t PriceTable) Merge(other PriceTable) {
	for symbol, h := range other {
		for on, price := range h.Values() {
			t.Add(symbol, on, price)
		}
	}
}

// PriceOn returns the price of a symbol on a given day, falling back to the
// most recent price within priceLookbackDays before it. It returns false
// when the table has no usable price.
func (t PriceTable) PriceOn(symbol string, on Date) (float64, bool) {
	h := t[strings.ToUpper(symbol)]
	if h == nil {
		return 0, false
	}
	return h.ValueWithin(on, priceLookbackDays)
}

// Has reports whether the table holds any price for the symbol.
func (t PriceTable) Has(symbol string) bool {
	h := t[strings.ToUpper(symbol)]
	return h != nil && h.Len() > 0
}

// fiatCodes lists symbols that are plain currencies rather than tickers.
// They have no end-of-day price series and are skipped by the fetcher.
var fiatCodes = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "CHF": true, "JPY": true,
	"CAD": true, "AUD": true, "NZD": true, "SEK": true, "NOK": true,
	"DKK": true, "PLN": true, "CZK": true, "HUF": true, "CNY": true,
	"HKD": true, "SGD": true, "INR": true, "BRL": true, "MXN": true,
}

// IsFiat reports whether a symbol is a plain currency code.
func IsFiat(symbol string) bool { return fiatCodes[strings.ToUpper(symbol)] }
