package networth

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file fetches live intraday quotes, used to refresh the current price
// recorded on investments. End-of-day history comes from eodhd.go instead.

/*
	{
	    "info": {
	        "isin": "LS000IUSD016",
	        "chartType": "mini",
	        ...
	    },
	    "series": {
	        "intraday": {
	            "data": [[1693900800000, 1.0712], ...]
	        }
	    }
	}
*/
func lsLatestQuote(name, instrumentId string) (float64, error) {
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=" + instrumentId + "&series=intraday&type=mini"
	var jobj any
	err := jwget(new(http.Client), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", name, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", name, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", name, path, "not a float", jval)
	}
	return val, nil
}

// tradegateLatest returns the last traded price on TradeGate for an ISIN.
// TradeGate quotes everything in EUR.
func tradegateLatest(name, isin string) (float64, error) {
	addr := "https://www.tradegate.de/refresh.php?isin=" + isin

	var jobj map[string]any
	err := jwget(new(http.Client), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", name, err)
	}
	// last is the last transaction, moves slower than the bid, but the bid can be 0.
	jval := jobj["last"] // or bid
	if s, ok := jval.(string); ok {
		if s == "./." {
			// trade gate show's empty last this way, use the bid instead
			log.Println("'last' is empty, falling back to 'bid'")
			jval = jobj["bid"]
		}
	}
	val, ok := jval.(float64)
	if !ok {
		// sometimes, this weird API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return math.NaN(), fmt.Errorf("cannot read value from %q: doesn't have a value and neither a float or string", name)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("cannot read value from %q: value is an invalid string %q: %w", name, sval, err)
		}
	}
	if val == 0 {
		// sometimes the bid is empty and returns 0
		return math.NaN(), fmt.Errorf("empty bid for %s no value to return: bidsize=%v", name, jobj["bidsize"])
	}
	return val, nil
}

// RefreshCurrentPrices updates the current price of every investment whose
// asset can be quoted live: through its ls-tc.de instrument id when set,
// otherwise through TradeGate when its symbol looks like an ISIN. Failures
// leave the previous current price in place.
func RefreshCurrentPrices(p *Portfolio) []error {
	var errs []error
	latest := make(map[string]float64)
	for i, v := range p.Investments() {
		if v.Asset.IsCurrency {
			continue
		}
		var fetch func() (float64, error)
		key := v.Asset.ID
		switch {
		case v.Asset.Quote != "":
			fetch = func() (float64, error) { return lsLatestQuote(v.Asset.Name, v.Asset.Quote) }
		case looksLikeISIN(v.Asset.Symbol):
			fetch = func() (float64, error) { return tradegateLatest(v.Asset.Name, v.Asset.Symbol) }
		default:
			continue
		}
		price, ok := latest[key]
		if !ok {
			var err error
			price, err = fetch()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			latest[key] = price
		}
		// both sources quote in EUR
		v.CurrentPrice = M(price, "EUR")
		p.investments[i] = v
	}
	return errs
}

// looksLikeISIN reports whether a symbol has the shape of an ISIN: two
// letters, nine alphanumerics, one check digit.
func looksLikeISIN(symbol string) bool {
	if len(symbol) != 12 {
		return false
	}
	for i, r := range symbol {
		switch {
		case i < 2:
			if r < 'A' || r > 'Z' {
				return false
			}
		case i == 11:
			if r < '0' || r > '9' {
				return false
			}
		default:
			if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
				return false
			}
		}
	}
	return true
}
