package networth

// SeriesPoint is one dated sample of the net-worth chart.
type SeriesPoint struct {
	Date  Date
	Total Money

	// ByAsset is the per-asset breakdown, clamped at zero and restricted
	// to the selected assets. It does not necessarily sum to Total.
	ByAsset map[string]Money

	// Contributions is the cumulative signed principal through this date,
	// extended past today by the funding plan.
	Contributions Money

	// Projected marks dates strictly after today.
	Projected bool
}

// Series is the full computed result: the chart points plus the two summary
// figures and the asset metadata the chart legend needs.
type Series struct {
	Points []SeriesPoint

	TodayNetWorth     Money
	ProjectedNetWorth Money // zero when no projection is active

	Assets []Asset
}

// ComputeSeries values the portfolio along an adaptive date axis: market
// worth for historical dates, live worth at today, and a linear path to the
// projected end valuation after it. It reads only its arguments, so it can
// be recomputed from anywhere, and it degrades gracefully: missing prices
// fall back to recorded amounts, and a zero today uses the current date.
func ComputeSeries(p *Portfolio, prices PriceTable, cfg ProjectionConfig, today Date) *Series {
	if today.IsZero() {
		today = Today()
	}
	s := &Series{}
	if p == nil || p.Len() == 0 {
		return s
	}
	for asset := range p.Assets() {
		s.Assets = append(s.Assets, asset)
	}
	s.TodayNetWorth = netWorthToday(p, today)

	var pr *projection
	if cfg.Active(today) {
		pr = newProjection(p, cfg, today)
		s.ProjectedNetWorth = pr.endTotal
	}

	axis := buildAxis(p.InvestmentDates(), today, cfg.End)
	contribToday := contributionsThrough(p, today)

	for _, pt := range axis {
		point := SeriesPoint{Date: pt.on}
		switch pt.class {
		case classHistorical:
			point.Total = netWorthOn(p, pt.on, prices)
			point.Contributions = contributionsThrough(p, pt.on)
			point.ByAsset = s.breakdown(worthByAsset(p, pt.on, func(v Investment) Money {
				return worthOn(v, pt.on, prices)
			}), cfg)
		case classToday:
			point.Total = s.TodayNetWorth
			point.Contributions = contribToday
			point.ByAsset = s.breakdown(worthByAsset(p, today, worthToday), cfg)
		case classProjected:
			point.Projected = true
			if pr == nil {
				continue
			}
			point.Total = pr.totalAt(pt.on)
			point.Contributions = contribToday.Add(cfg.Funding.Accrued(today, pt.on))
			point.ByAsset = s.projectedBreakdown(pr, pt.on, cfg)
		}
		s.Points = append(s.Points, point)
	}
	return s
}

// breakdown clamps a signed per-asset valuation at zero and applies the
// selection filter.
func (s *Series) breakdown(byAsset map[string]Money, cfg ProjectionConfig) map[string]Money {
	out := make(map[string]Money, len(byAsset))
	for id, worth := range byAsset {
		if !cfg.selects(id) {
			continue
		}
		out[id] = worth.ClampZero()
	}
	return out
}

func (s *Series) projectedBreakdown(pr *projection, on Date, cfg ProjectionConfig) map[string]Money {
	out := make(map[string]Money, len(pr.todayByAsset))
	for id := range pr.todayByAsset {
		if !cfg.selects(id) {
			continue
		}
		out[id] = pr.assetAt(id, on)
	}
	return out
}

// Progress returns today's net worth as a percentage of the projected end
// value, or zero when no projection is active.
func (s *Series) Progress() Percent {
	if s.ProjectedNetWorth.IsZero() {
		return 0
	}
	return Percent(s.TodayNetWorth.Ratio(s.ProjectedNetWorth).value.InexactFloat64() * 100)
}

// todayContributions returns the cumulative contributions at the last
// unprojected point.
func (s *Series) todayContributions() Money {
	var contrib Money
	for _, pt := range s.Points {
		if !pt.Projected {
			contrib = pt.Contributions
		}
	}
	return contrib
}

// Gain returns today's net worth minus the contributions paid in so far.
func (s *Series) Gain() Money {
	return s.TodayNetWorth.Sub(s.todayContributions())
}

// GainPercent returns the gain relative to the contributions paid in, or
// zero when nothing has been contributed yet.
func (s *Series) GainPercent() Percent {
	contrib := s.todayContributions()
	if contrib.IsZero() {
		return 0
	}
	return Percent(s.Gain().Ratio(contrib).value.InexactFloat64() * 100)
}

// Convert returns a copy of the series with every amount converted into the
// given currency. Conversion happens at display time only: the engine sums
// native amounts.
func (s *Series) Convert(rates Rates, to string) *Series {
	out := &Series{
		TodayNetWorth:     rates.Convert(s.TodayNetWorth, to),
		ProjectedNetWorth: rates.Convert(s.ProjectedNetWorth, to),
		Assets:            s.Assets,
	}
	for _, pt := range s.Points {
		cp := SeriesPoint{
			Date:          pt.Date,
			Total:         rates.Convert(pt.Total, to),
			Contributions: rates.Convert(pt.Contributions, to),
			Projected:     pt.Projected,
			ByAsset:       make(map[string]Money, len(pt.ByAsset)),
		}
		for id, worth := range pt.ByAsset {
			cp.ByAsset[id] = rates.Convert(worth, to)
		}
		out.Points = append(out.Points, cp)
	}
	return out
}

// MarshalJSON implements the json.Marshaler interface with a fixed field order.
func (pt SeriesPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", pt.Date)
	w.Append("total", pt.Total.value)
	w.Append("contributions", pt.Contributions.value)
	w.Append("projected", pt.Projected)
	w.Append("byAsset", pt.ByAsset)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface with a fixed field order.
func (s *Series) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("todayNetWorth", s.TodayNetWorth.value)
	w.Append("projectedNetWorth", s.ProjectedNetWorth.value)
	w.Append("assets", s.Assets)
	w.Append("points", s.Points)
	return w.MarshalJSON()
}
