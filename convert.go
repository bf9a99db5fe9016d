package networth

// Rates is an exchange-rate table pivoted through a base currency: the rate
// for a code is how many units of that code one unit of the base buys. The
// base itself always rates at 1.
type Rates struct {
	base  string
	table map[string]float64
}

// NewRates creates a rate table pivoted on the given base currency.
func NewRates(base string, table map[string]float64) Rates {
	return Rates{base: base, table: table}
}

// Base returns the pivot currency.
func (r Rates) Base() string { return r.base }

// Rate returns how many units of the given currency one unit of the base
// buys. It returns false when the table has no rate for it.
func (r Rates) Rate(code string) (float64, bool) {
	if code == r.base {
		return 1, true
	}
	rate, ok := r.table[code]
	if !ok || rate == 0 {
		return 0, false
	}
	return rate, true
}

// Convert converts an amount into the given currency, pivoting through the
// base. Amounts without a currency are assumed to be in the base. When a
// rate is missing the amount is returned unchanged: a wrong number is worse
// than an unconverted one.
func (r Rates) Convert(m Money, to string) Money {
	from := m.Currency()
	if from == "" {
		from = r.base
	}
	if from == to || to == "" {
		return m
	}
	fromRate, ok := r.Rate(from)
	if !ok {
		return m
	}
	toRate, ok := r.Rate(to)
	if !ok {
		return m
	}
	return M(m.AsFloat()/fromRate*toRate, to)
}
