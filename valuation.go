package networth

// worthOn returns the signed worth of a single investment at a historical
// date: the point-in-time market price times the signed quantity. Currency
// holdings, symbolless assets and dates with no usable price all fall back
// to the amount recorded on the investment itself.
func worthOn(v Investment, on Date, prices PriceTable) Money {
	if v.Asset.IsCurrency || v.Asset.Symbol == "" {
		return v.Contribution()
	}
	price, ok := prices.PriceOn(v.Asset.Symbol, on)
	if !ok {
		return v.Contribution()
	}
	return M(price, v.PurchasePrice.Currency()).Mul(v.SignedQuantity())
}

// worthToday returns the signed worth of a single investment now, preferring
// the live figures refreshed onto the record: the total current value when
// present, then the current per-unit price, then the recorded amount.
func worthToday(v Investment) Money {
	if v.Asset.IsCurrency {
		return v.Contribution()
	}
	if !v.CurrentValue.IsZero() {
		if v.IsSale() {
			return v.CurrentValue.Abs().Neg()
		}
		return v.CurrentValue.Abs()
	}
	if !v.CurrentPrice.IsZero() {
		return v.CurrentPrice.Abs().Mul(v.SignedQuantity())
	}
	return v.Contribution()
}

// netWorthOn sums the historical worth of every investment made on or
// before the given date.
func netWorthOn(p *Portfolio, on Date, prices PriceTable) Money {
	var total Money
	for _, v := range p.Investments(OnOrBefore(on)) {
		total = total.Add(worthOn(v, on, prices))
	}
	return total
}

// netWorthToday sums the live worth of every investment.
func netWorthToday(p *Portfolio, today Date) Money {
	var total Money
	for _, v := range p.Investments(OnOrBefore(today)) {
		total = total.Add(worthToday(v))
	}
	return total
}

// worthByAsset groups the given per-investment worth function by asset.
func worthByAsset(p *Portfolio, on Date, worth func(Investment) Money) map[string]Money {
	byAsset := make(map[string]Money)
	for _, v := range p.Investments(OnOrBefore(on)) {
		byAsset[v.Asset.ID] = byAsset[v.Asset.ID].Add(worth(v))
	}
	return byAsset
}
