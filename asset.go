package networth

// Asset identifies something that can be held: a security, a fund, or a
// cash-equivalent. Metadata is echoed back unchanged on the computed series
// for chart legends.
type Asset struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol,omitempty"` // uppercase ticker; empty when no market series exists
	Name   string `json:"name,omitempty"`
	Color  string `json:"color,omitempty"` // optional fixed display color

	// Quote is the ls-tc.de instrument id for live intraday quotes. Assets
	// without one fall back to TradeGate when Symbol looks like an ISIN.
	Quote string `json:"quote,omitempty"`

	// IsCurrency marks cash-equivalent assets ("USD", "EUR"). Their value is
	// always the recorded transaction amount: they never appreciate and are
	// never looked up in a price series.
	IsCurrency bool `json:"isCurrency,omitempty"`
}

// Investment is a single purchase or sale of an asset. A sale is represented
// by a negative quantity and/or a negative price.
type Investment struct {
	ID            string
	Asset         Asset
	Quantity      Quantity
	PurchasePrice Money // per unit, at purchase time
	TotalCost     Money // optional recorded total; preferred over price x quantity
	PurchaseDate  Date
	CurrentPrice  Money // live per-unit market price, externally refreshed
	CurrentValue  Money // optional live total value, externally refreshed
}

// IsSale reports whether the record is a disposal.
func (v Investment) IsSale() bool {
	return v.Quantity.IsNegative() || v.PurchasePrice.IsNegative()
}

// RecordedAmount is the unsigned worth recorded on the investment itself:
// the explicit total cost when present, otherwise price x quantity in
// absolute values.
func (v Investment) RecordedAmount() Money {
	if !v.TotalCost.IsZero() {
		return v.TotalCost.Abs()
	}
	return v.PurchasePrice.Abs().Mul(v.Quantity.Abs())
}

// Contribution is the signed principal this record moved into (or, for a
// sale, out of) the portfolio. It depends only on recorded fields, never on
// market data: the contribution series must stay stable while price
// histories are still loading.
func (v Investment) Contribution() Money {
	amount := v.RecordedAmount()
	if v.IsSale() {
		return amount.Neg()
	}
	return amount
}

// SignedQuantity returns the quantity with the sale sign folded in, so that
// price x SignedQuantity values a sale negatively even when the sale was
// recorded with a negative price and a positive quantity.
func (v Investment) SignedQuantity() Quantity {
	if v.IsSale() {
		return v.Quantity.Abs().Neg()
	}
	return v.Quantity.Abs()
}

// MarshalJSON implements the json.Marshaler interface with a fixed field order.
func (v Investment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", v.ID)
	w.Append("asset", v.Asset)
	w.Append("date", v.PurchaseDate)
	w.Append("quantity", v.Quantity)
	w.Append("price", v.PurchasePrice.value)
	w.Optional("totalCost", v.TotalCost.value)
	w.Optional("currency", v.PurchasePrice.cur)
	w.Optional("currentPrice", v.CurrentPrice.value)
	w.Optional("currentValue", v.CurrentValue.value)
	return w.MarshalJSON()
}
