package networth

import (
	"testing"
	"time"
)

func TestWorthOn_PointInTimePrice(t *testing.T) {
	on := NewDate(2025, time.June, 1)
	v := buy("a", vti, NewDate(2025, time.January, 1), 10, 100)

	prices := make(PriceTable)
	prices.Add("VTI", on, 150)

	if got := worthOn(v, on, prices); !got.Equal(USD(1500)) {
		t.Errorf("worthOn() = %v, want USD 1500", got)
	}
	// weekend gap: the friday price resolves through the lookback
	if got := worthOn(v, on.Add(2), prices); !got.Equal(USD(1500)) {
		t.Errorf("worthOn(+2d) = %v, want USD 1500", got)
	}
	// too old: fall back to the recorded amount
	if got := worthOn(v, on.Add(10), prices); !got.Equal(USD(1000)) {
		t.Errorf("worthOn(+10d) = %v, want the recorded USD 1000", got)
	}
}

func TestWorthOn_NoPriceFallsBack(t *testing.T) {
	v := buy("a", vti, NewDate(2025, time.January, 1), 10, 100)
	if got := worthOn(v, NewDate(2025, time.June, 1), make(PriceTable)); !got.Equal(USD(1000)) {
		t.Errorf("worthOn() = %v, want the recorded USD 1000", got)
	}
}

func TestWorthOn_CurrencyLike(t *testing.T) {
	v := deposit("a", NewDate(2025, time.January, 1), 500)
	prices := make(PriceTable)
	prices.Add("USD", NewDate(2025, time.June, 1), 999) // must be ignored

	for _, on := range []Date{
		NewDate(2025, time.January, 1),
		NewDate(2025, time.June, 1),
		NewDate(2026, time.January, 1),
	} {
		if got := worthOn(v, on, prices); !got.Equal(USD(500)) {
			t.Errorf("worthOn(%v) = %v, want USD 500 at all times", on, got)
		}
	}
	if got := worthToday(v); !got.Equal(USD(500)) {
		t.Errorf("worthToday() = %v, want USD 500", got)
	}
}

func TestWorthOn_SaleValuesNegatively(t *testing.T) {
	on := NewDate(2025, time.June, 1)
	v := sell("a", vti, NewDate(2025, time.January, 1), 10, 100)
	prices := make(PriceTable)
	prices.Add("VTI", on, 150)
	if got := worthOn(v, on, prices); !got.Equal(USD(-1500)) {
		t.Errorf("worthOn(sale) = %v, want USD -1500", got)
	}
}

func TestWorthToday_Preference(t *testing.T) {
	v := buy("a", vti, NewDate(2025, time.January, 1), 10, 100)

	if got := worthToday(v); !got.Equal(USD(1000)) {
		t.Errorf("worthToday() = %v, want the recorded USD 1000", got)
	}
	v.CurrentPrice = USD(150)
	if got := worthToday(v); !got.Equal(USD(1500)) {
		t.Errorf("worthToday() = %v, want price x quantity USD 1500", got)
	}
	v.CurrentValue = USD(1600)
	if got := worthToday(v); !got.Equal(USD(1600)) {
		t.Errorf("worthToday() = %v, want the live total USD 1600", got)
	}
}

func TestNetWorthOn_IgnoresLaterInvestments(t *testing.T) {
	on := NewDate(2025, time.March, 1)
	p := NewPortfolio(
		buy("a", vti, NewDate(2025, time.January, 1), 10, 100),
		buy("b", vti, NewDate(2025, time.June, 1), 10, 100),
	)
	if got := netWorthOn(p, on, make(PriceTable)); !got.Equal(USD(1000)) {
		t.Errorf("netWorthOn() = %v, want USD 1000", got)
	}
}
