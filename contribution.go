package networth

// daysPerMonth is the average Gregorian month length, used to turn a day
// span into a number of funded months.
const daysPerMonth = 30.44

// contributionsThrough sums the signed contributions of every investment
// made on or before the given date. It never touches market data: the
// contribution line must read the same whether or not price histories have
// loaded.
func contributionsThrough(p *Portfolio, on Date) Money {
	var total Money
	for _, v := range p.Investments(OnOrBefore(on)) {
		total = total.Add(v.Contribution())
	}
	return total
}

// FundingPlan describes recurring monthly contributions applied during the
// projection.
type FundingPlan struct {
	Enabled bool  `json:"enabled"`
	Monthly Money `json:"monthly"`

	// Progressive grows the monthly amount by AnnualGrowth/12 each month,
	// compounding. When false the monthly amount stays flat.
	Progressive  bool    `json:"progressive,omitempty"`
	AnnualGrowth float64 `json:"annualGrowth,omitempty"` // e.g. 0.05 for 5% a year
}

// monthsElapsed converts the span between two dates into whole funded
// months, using the average month length. The first month completes only
// once a full average month has passed.
func monthsElapsed(from, to Date) int {
	days := to.DaysSince(from)
	if days <= 0 {
		return 0
	}
	return int(float64(days) / daysPerMonth)
}

// Accrued returns the total contributed by the plan between the two dates.
func (f FundingPlan) Accrued(from, to Date) Money {
	if !f.Enabled || f.Monthly.IsZero() {
		return Money{}
	}
	months := monthsElapsed(from, to)
	if months == 0 {
		return Money{}
	}
	if !f.Progressive || f.AnnualGrowth == 0 {
		return f.Monthly.Mul(Q(months))
	}
	monthlyRate := f.AnnualGrowth / 12
	total := Money{}
	factor := 1.0
	for k := 0; k < months; k++ {
		total = total.Add(f.Monthly.Scale(factor))
		factor *= 1 + monthlyRate
	}
	return total
}
