package marketcap

import "github.com/mau1878/marketcapmanual/date"

// CapPoint is a single dated market-capitalization value.
type CapPoint struct {
	Date  date.Date
	Value float64
}

// CapEntry is one daily row of the derived series, with the factors that
// produced it.
type CapEntry struct {
	Date   date.Date
	Price  float64
	Shares float64
	Cap    float64
}

// CapReport summarizes a derived market-capitalization series for rendering.
type CapReport struct {
	Ticker   string
	Currency string
	Policy   MergePolicy
	Range    date.Range
	Days     int // entries in the merged series
	Dropped  int // unparseable input lines skipped by the share parser

	Latest CapPoint
	Peak   CapPoint
	Trough CapPoint

	// Tail holds the most recent rows of the series, newest last.
	Tail []CapEntry
}

// tailLength bounds the rows rendered in the report table.
const tailLength = 10

// NewCapReport derives the rendering summary from the merged series and the
// two series it was built from.
func NewCapReport(ticker string, cfg *Config, policy MergePolicy, shares, prices, caps date.History[float64]) *CapReport {
	r := &CapReport{
		Ticker:   ticker,
		Currency: cfg.Currency,
		Policy:   policy,
		Days:     caps.Len(),
	}
	if caps.Len() == 0 {
		return r
	}

	first, _ := caps.First()
	last, lastValue := caps.Latest()
	r.Range = date.NewRange(first, last)
	r.Latest = CapPoint{last, lastValue}
	firstValue, _ := caps.Get(first)
	r.Peak = CapPoint{first, firstValue}
	r.Trough = CapPoint{first, firstValue}

	for on, value := range caps.Values() {
		if value > r.Peak.Value {
			r.Peak = CapPoint{on, value}
		}
		if value < r.Trough.Value {
			r.Trough = CapPoint{on, value}
		}

		entry := CapEntry{Date: on, Cap: value}
		entry.Price, _ = prices.Get(on)
		// Under the price-driven policy the share series may not hold the
		// exact date, the forward-filled value is the one that was used.
		entry.Shares, _ = shares.ValueAsOf(on)
		r.Tail = append(r.Tail, entry)
		if len(r.Tail) > tailLength {
			r.Tail = r.Tail[1:]
		}
	}
	return r
}
