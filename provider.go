package marketcap

import "github.com/mau1878/marketcapmanual/date"

// Quoter fetches the daily closing prices of a security from a market-data
// service.
type Quoter interface {
	// DailyCloses returns one close per trading day inside r, keyed by
	// calendar date. Non-trading days are simply absent.
	DailyCloses(ticker string, r date.Range) (date.History[float64], error)
	// Name identifies the provider in logs and error messages.
	Name() string
}

// StaticQuoter serves a fixed price series. It backs offline runs and tests.
type StaticQuoter struct {
	Prices date.History[float64]
}

func (q *StaticQuoter) Name() string { return "static" }

// DailyCloses returns the subset of the fixed series that falls inside r.
func (q *StaticQuoter) DailyCloses(ticker string, r date.Range) (date.History[float64], error) {
	var prices date.History[float64]
	for on, price := range q.Prices.Values() {
		if r.Contains(on) {
			prices.Append(on, price)
		}
	}
	return prices, nil
}

var _ Quoter = (*StaticQuoter)(nil)
