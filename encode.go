package networth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// investmentRecord is a specialized struct for decoding one JSONL line.
// Money fields are split into an amount and a shared currency on the wire.
type investmentRecord struct {
	ID           string          `json:"id"`
	Asset        Asset           `json:"asset"`
	Date         Date            `json:"date"`
	Quantity     Quantity        `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	Currency     string          `json:"currency"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	CurrentValue decimal.Decimal `json:"currentValue"`
}

func (r investmentRecord) investment() Investment {
	return Investment{
		ID:            r.ID,
		Asset:         r.Asset,
		PurchaseDate:  r.Date,
		Quantity:      r.Quantity,
		PurchasePrice: M(r.Price, r.Currency),
		TotalCost:     M(r.TotalCost, r.Currency),
		CurrentPrice:  M(r.CurrentPrice, r.Currency),
		CurrentValue:  M(r.CurrentValue, r.Currency),
	}
}

// DecodePortfolio decodes investments from a stream of JSONL data and
// returns a sorted portfolio.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	p := NewPortfolio()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var rec investmentRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode investment on line %d: %w", line, err)
		}
		v := rec.investment()
		if err := p.Validate(v); err != nil {
			return nil, fmt.Errorf("invalid investment on line %d: %w", line, err)
		}
		p.Append(v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read portfolio: %w", err)
	}
	return p, nil
}

// DecodeInvestment decodes a single investment from a JSON object.
func DecodeInvestment(r io.Reader) (Investment, error) {
	var rec investmentRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return Investment{}, fmt.Errorf("could not decode investment: %w", err)
	}
	return rec.investment(), nil
}

// EncodeInvestment writes a single investment as one JSON line.
func EncodeInvestment(w io.Writer, v Investment) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode investment %s: %w", v.ID, err)
	}
	if _, err := w.Write(append(bytes, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodePortfolio persists the portfolio to an io.Writer in JSONL format,
// one investment per line, in chronological order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for _, v := range p.Investments() {
		if err := EncodeInvestment(w, v); err != nil {
			return err
		}
	}
	return nil
}
