// Package networth computes a chronologically consistent net-worth time
// series from a list of investment records, point-in-time market prices and
// a user-supplied projection configuration.
//
// The core is a single pure function, [ComputeSeries], that blends three
// regimes into one ordered series:
//   - Historical valuation: point-in-time prices with graceful fallback to
//     the amounts recorded on the investments themselves.
//   - Today's actual valuation: the live price or value carried by each
//     investment record.
//   - Future projection: linear interpolation between today's valuation and
//     an end-state computed from per-asset target prices, optionally funded
//     by a recurring contribution plan.
//
// The engine is side-effect free and recomputed from scratch on any input
// change: identical inputs always yield an identical series. Currency
// conversion is applied at display time only, through [Rates]; the engine
// itself sums native amounts.
//
// This package is the foundation of the `nwd` command-line tool and its
// HTTP read API. Fetching price histories and exchange rates from external
// providers lives at that outer layer too, never inside the engine.
package networth
