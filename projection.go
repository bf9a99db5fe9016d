package networth

// ProjectionConfig describes how to extend the series past today. The zero
// value disables projection.
type ProjectionConfig struct {
	// End is the date the projection runs to. Projection is active only
	// when End is set and strictly after today.
	End Date `json:"end,omitzero"`

	// TargetPrices maps asset ids to an assumed per-unit price at End.
	// Assets without a target keep their current price.
	TargetPrices map[string]Money `json:"targetPrices,omitempty"`

	// Funding is the recurring contribution plan applied during projection.
	Funding FundingPlan `json:"funding,omitzero"`

	// Selected restricts the per-asset breakdown to the listed asset ids.
	// Empty means all. Totals are never filtered.
	Selected []string `json:"selected,omitempty"`
}

// Active reports whether the config projects past the given today.
func (c ProjectionConfig) Active(today Date) bool {
	return !c.End.IsZero() && c.End.After(today)
}

// TargetPrice returns the assumed end price for an investment: the
// configured target for its asset when set, otherwise its current price.
func (c ProjectionConfig) TargetPrice(v Investment) Money {
	if target, ok := c.TargetPrices[v.Asset.ID]; ok && !target.IsZero() {
		return target
	}
	return v.CurrentPrice
}

// selects reports whether the asset id passes the breakdown filter.
func (c ProjectionConfig) selects(id string) bool {
	if len(c.Selected) == 0 {
		return true
	}
	for _, s := range c.Selected {
		if s == id {
			return true
		}
	}
	return false
}

// projection holds the two reference valuations a projected segment
// interpolates between: everything at today and everything at the end date.
type projection struct {
	today, end Date

	todayTotal   Money
	endTotal     Money
	todayByAsset map[string]Money
	endByAsset   map[string]Money
}

// newProjection values the portfolio at today and at the configured end
// date. End worths assume target prices and fold in the funding plan,
// allocated across assets in proportion to their share of today's
// non-currency worth, each share grown by its own target/current price
// ratio. An asset worth nothing today stays at zero: there is nothing to
// grow.
func newProjection(p *Portfolio, cfg ProjectionConfig, today Date) *projection {
	pr := &projection{
		today:        today,
		end:          cfg.End,
		todayByAsset: worthByAsset(p, today, worthToday),
		endByAsset:   make(map[string]Money),
	}
	for _, worth := range pr.todayByAsset {
		pr.todayTotal = pr.todayTotal.Add(worth)
	}

	var growable Money
	for asset := range p.Assets() {
		if !asset.IsCurrency && pr.todayByAsset[asset.ID].IsPositive() {
			growable = growable.Add(pr.todayByAsset[asset.ID])
		}
	}
	contrib := cfg.Funding.Accrued(today, cfg.End)

	for _, v := range p.Investments(OnOrBefore(today)) {
		id := v.Asset.ID
		if pr.todayByAsset[id].IsZero() {
			pr.endByAsset[id] = Money{}
			continue
		}
		if v.Asset.IsCurrency {
			pr.endByAsset[id] = pr.endByAsset[id].Add(worthToday(v))
			continue
		}
		target := cfg.TargetPrice(v)
		end := target.Abs().Mul(v.SignedQuantity())
		if target.IsZero() {
			end = worthToday(v)
		}
		pr.endByAsset[id] = pr.endByAsset[id].Add(end)
	}

	// Allocate projected contributions per asset by its grown weight.
	if !contrib.IsZero() && growable.IsPositive() {
		for asset := range p.Assets() {
			worth := pr.todayByAsset[asset.ID]
			if asset.IsCurrency || !worth.IsPositive() {
				continue
			}
			weight := worth.AsFloat() / growable.AsFloat()
			weight *= growthRatio(p, cfg, asset.ID)
			pr.endByAsset[asset.ID] = pr.endByAsset[asset.ID].Add(contrib.Scale(weight))
		}
	}

	for _, worth := range pr.endByAsset {
		pr.endTotal = pr.endTotal.Add(worth)
	}
	return pr
}

// growthRatio returns the target/current price ratio of an asset, or 1
// when either side is unknown. Mixed lots use the first investment that
// carries both prices.
func growthRatio(p *Portfolio, cfg ProjectionConfig, id string) float64 {
	for _, v := range p.Investments(ByAsset(id)) {
		target := cfg.TargetPrice(v)
		if target.IsZero() || v.CurrentPrice.IsZero() {
			continue
		}
		return target.Abs().AsFloat() / v.CurrentPrice.Abs().AsFloat()
	}
	return 1
}

// progress returns the linear position of a date between today and the end,
// clamped to [0, 1].
func (pr *projection) progress(on Date) float64 {
	span := pr.end.DaysSince(pr.today)
	if span <= 0 {
		return 1
	}
	p := float64(on.DaysSince(pr.today)) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// totalAt interpolates the total net worth at a projected date. The end
// date returns the end valuation exactly, with no interpolation rounding.
func (pr *projection) totalAt(on Date) Money {
	if on == pr.end {
		return pr.endTotal
	}
	delta := pr.endTotal.Sub(pr.todayTotal)
	return pr.todayTotal.Add(delta.Scale(pr.progress(on)))
}

// assetAt interpolates one asset's worth at a projected date and clamps it
// at zero: a chart band cannot dip below the axis even when a sale drives
// the signed sum negative.
func (pr *projection) assetAt(id string, on Date) Money {
	start, end := pr.todayByAsset[id], pr.endByAsset[id]
	if on == pr.end {
		return end.ClampZero()
	}
	worth := start.Add(end.Sub(start).Scale(pr.progress(on)))
	return worth.ClampZero()
}
