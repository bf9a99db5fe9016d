package networth

import (
	"flag"
	"fmt"
	"os"
	"sync"
)

// This file contains functions to access the EODHD API.

const eodhd_api_key = "EODHD_API_KEY"

var eodhdApiFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+eodhd_api_key+"\". You can get one at https://eodhd.com/")

func eodhdApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdApiFlag == "" {
		*eodhdApiFlag = os.Getenv(eodhd_api_key)
	}
	return *eodhdApiFlag
}

// eodhdDaily returns the daily adjusted close prices for a given ticker.
func eodhdDaily(apiKey, ticker string, from, to Date) (*History[float64], error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=...&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//	  },
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", ticker, apiKey, from, to)
	type Info struct {
		Date  Date    `json:"date"`
		Close float64 `json:"adjusted_close"`
	}

	content := make([]Info, 0)
	// query that endpoint at most once a day
	if err := jwget(daily(), addr, &content); err != nil {
		return nil, err
	}
	prices := &History[float64]{}
	for _, info := range content {
		prices.Append(info.Date, info.Close)
	}
	return prices, nil
}

// FetchPrices downloads the daily price history for every symbol, one
// request per symbol, concurrently. Plain currency codes are skipped: they
// have no end-of-day series. Symbols that fail are reported but do not stop
// the others, so the table degrades rather than vanishes.
func FetchPrices(symbols []string, from, to Date) (PriceTable, []error) {
	apiKey := eodhdApiKey()
	if apiKey == "" {
		return nil, []error{fmt.Errorf("no EODHD API key: set -eodhd-api-key or %s", eodhd_api_key)}
	}

	table := make(PriceTable)
	var mu sync.Mutex
	var wg sync.WaitGroup
	var errs []error

	for _, symbol := range symbols {
		if IsFiat(symbol) {
			continue
		}
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			prices, err := eodhdDaily(apiKey, symbol, from, to)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("could not fetch prices for %s: %w", symbol, err))
				return
			}
			table[symbol] = prices
		}(symbol)
	}
	wg.Wait()
	return table, errs
}

// eodhdForex returns the latest exchange rate for a currency pair.
func eodhdForex(apiKey, from, to string) (float64, error) {
	// The ticker for forex is in the format "fromCurrency+toCurrency.FOREX".
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s%s.FOREX?fmt=json&api_token=%s", from, to, apiKey)
	var content struct {
		Close float64 `json:"close"`
	}
	if err := jwget(daily(), addr, &content); err != nil {
		return 0, err
	}
	if content.Close == 0 {
		return 0, fmt.Errorf("no rate for %s/%s", from, to)
	}
	return content.Close, nil
}

// FetchRates downloads the exchange rate from the base into each of the
// given currencies. Currencies that fail are simply absent from the table:
// conversion then echoes the native amount.
func FetchRates(base string, currencies []string) (Rates, []error) {
	apiKey := eodhdApiKey()
	if apiKey == "" {
		return NewRates(base, nil), []error{fmt.Errorf("no EODHD API key: set -eodhd-api-key or %s", eodhd_api_key)}
	}

	table := make(map[string]float64)
	var mu sync.Mutex
	var wg sync.WaitGroup
	var errs []error

	for _, currency := range currencies {
		if currency == base {
			continue
		}
		wg.Add(1)
		go func(currency string) {
			defer wg.Done()
			rate, err := eodhdForex(apiKey, base, currency)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("could not fetch rate %s/%s: %w", base, currency, err))
				return
			}
			table[currency] = rate
		}(currency)
	}
	wg.Wait()
	return NewRates(base, table), errs
}
