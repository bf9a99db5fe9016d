package networth

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

const sampleJSONL = `{"id":"a","asset":{"id":"vti","symbol":"VTI","name":"Total Stock Market"},"date":"2025-01-02","quantity":10,"price":100,"currency":"USD"}
{"id":"b","asset":{"id":"usd","name":"US Dollars","isCurrency":true},"date":"2025-02-01","quantity":0,"totalCost":500,"currency":"USD"}
{"id":"c","asset":{"id":"vti","symbol":"VTI","name":"Total Stock Market"},"date":"2025-03-01","quantity":-4,"price":120,"currency":"USD"}
`

func TestDecodePortfolio(t *testing.T) {
	p, err := DecodePortfolio(strings.NewReader(sampleJSONL))
	if err != nil {
		t.Fatalf("DecodePortfolio() error = %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}

	var first Investment
	for _, v := range p.Investments() {
		first = v
		break
	}
	if first.ID != "a" {
		t.Errorf("first investment = %s, want a", first.ID)
	}
	if first.PurchaseDate != NewDate(2025, time.January, 2) {
		t.Errorf("date = %v, want 2025-01-02", first.PurchaseDate)
	}
	if !first.PurchasePrice.Equal(USD(100)) {
		t.Errorf("price = %v, want USD 100", first.PurchasePrice)
	}

	// the cash line decodes as a currency-like holding
	if got := contributionsThrough(p, NewDate(2025, time.February, 15)); !got.Equal(USD(1500)) {
		t.Errorf("contributions = %v, want USD 1500", got)
	}
	// the sale decodes negative
	if got := contributionsThrough(p, NewDate(2025, time.April, 1)); !got.Equal(USD(1020)) {
		t.Errorf("contributions after sale = %v, want USD 1020", got)
	}
}

func TestDecodePortfolio_Invalid(t *testing.T) {
	if _, err := DecodePortfolio(strings.NewReader(`{"id":"a"}`)); err == nil {
		t.Error("DecodePortfolio() should reject an investment without an asset")
	}
	if _, err := DecodePortfolio(strings.NewReader(`not json`)); err == nil {
		t.Error("DecodePortfolio() should reject malformed lines")
	}
}

func TestEncodePortfolio_RoundTrip(t *testing.T) {
	p, err := DecodePortfolio(strings.NewReader(sampleJSONL))
	if err != nil {
		t.Fatalf("DecodePortfolio() error = %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatalf("EncodePortfolio() error = %v", err)
	}
	again, err := DecodePortfolio(&buf)
	if err != nil {
		t.Fatalf("DecodePortfolio(round trip) error = %v\n%s", err, buf.String())
	}
	if again.Len() != p.Len() {
		t.Fatalf("round trip Len() = %d, want %d", again.Len(), p.Len())
	}
	for i, v := range p.Investments() {
		w := again.investments[i]
		if v.ID != w.ID || v.PurchaseDate != w.PurchaseDate || !v.Quantity.Equal(w.Quantity) {
			t.Errorf("round trip investment %d = %+v, want %+v", i, w, v)
		}
		if !v.Contribution().Equal(w.Contribution()) {
			t.Errorf("round trip contribution %d = %v, want %v", i, w.Contribution(), v.Contribution())
		}
	}
}
