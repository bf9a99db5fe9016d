package networth

var (
	vti  = Asset{ID: "vti", Symbol: "VTI", Name: "Total Stock Market"}
	btc  = Asset{ID: "btc", Symbol: "BTC-USD", Name: "Bitcoin"}
	vti2 = Asset{ID: "vti2", Symbol: "VXUS", Name: "International Stock"}
	usd  = Asset{ID: "usd", Symbol: "USD", Name: "US Dollars", IsCurrency: true}
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// buy is a helper for test to create a simple purchase.
func buy(id string, asset Asset, on Date, quantity, price float64) Investment {
	return Investment{
		ID:            id,
		Asset:         asset,
		PurchaseDate:  on,
		Quantity:      Q(quantity),
		PurchasePrice: USD(price),
	}
}

// sell is a helper for test to create a disposal.
func sell(id string, asset Asset, on Date, quantity, price float64) Investment {
	v := buy(id, asset, on, quantity, price)
	v.Quantity = v.Quantity.Neg()
	return v
}

// deposit is a helper for test to create a cash-equivalent holding.
func deposit(id string, on Date, amount float64) Investment {
	return Investment{
		ID:           id,
		Asset:        usd,
		PurchaseDate: on,
		TotalCost:    USD(amount),
	}
}
