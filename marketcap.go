package marketcap

import (
	"fmt"

	"github.com/mau1878/marketcapmanual/date"
)

// MergePolicy selects how the daily share series and the price series are
// aligned before multiplying. The two policies come from divergent variants
// of the original tool, so the choice is explicit rather than hard-coded.
type MergePolicy int

const (
	// InnerJoin keeps only the dates present in both series.
	InnerJoin MergePolicy = iota
	// PriceDriven lets the price series drive the output's date set; share
	// values are forward-filled from the last known sample. Price dates
	// before the first share sample are skipped.
	PriceDriven
)

func (p MergePolicy) String() string {
	switch p {
	case InnerJoin:
		return "inner"
	case PriceDriven:
		return "price"
	default:
		return fmt.Sprintf("MergePolicy(%d)", int(p))
	}
}

// ParseMergePolicy parses the flag/config spelling of a merge policy.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch s {
	case "inner":
		return InnerJoin, nil
	case "price":
		return PriceDriven, nil
	default:
		return InnerJoin, fmt.Errorf("invalid merge policy %q: want %q or %q", s, InnerJoin, PriceDriven)
	}
}

// MarketCap multiplies daily prices by daily share counts under the given
// merge policy. The result holds price*shares for every surviving date.
//
// It is a pure transform: no rounding, no currency conversion. When the two
// series have no overlap the result is simply empty.
func MarketCap(shares, prices date.History[float64], policy MergePolicy) date.History[float64] {
	var caps date.History[float64]
	for on, price := range prices.Values() {
		var count float64
		var ok bool
		switch policy {
		case PriceDriven:
			count, ok = shares.ValueAsOf(on)
		default:
			count, ok = shares.Get(on)
		}
		if !ok {
			continue
		}
		caps.Append(on, price*count)
	}
	return caps
}
