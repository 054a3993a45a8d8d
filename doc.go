// Package marketcap derives a market-capitalization time series from pasted
// "shares outstanding" records and a daily share-price history.
//
// The core functionalities include:
//   - Share Series Building: parsing tab-separated (date, shares in millions)
//     records and resampling them to a gap-free daily series by time-based
//     linear interpolation.
//   - Market-Cap Derivation: merging the daily share series with a daily
//     price series, under an explicit merge policy, and multiplying price by
//     share count for every surviving date.
//   - Price Providers: fetching daily closing prices from market-data
//     services through a small Quoter interface.
//
// All operations are pure functions of their inputs: every invocation works
// on freshly parsed, invocation-local series and nothing is persisted.
//
// This package serves as the foundational logic for the `mcap` command-line
// tool.
package marketcap
