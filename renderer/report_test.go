package renderer

import (
	"strings"
	"testing"

	marketcap "github.com/mau1878/marketcapmanual"
	"github.com/mau1878/marketcapmanual/date"
)

func TestCapMarkdown(t *testing.T) {
	r := &marketcap.CapReport{
		Ticker:   "AAPL",
		Currency: "USD",
		Policy:   marketcap.InnerJoin,
		Range:    date.NewRange(date.New(2023, 1, 1), date.New(2023, 1, 2)),
		Days:     2,
		Latest:   marketcap.CapPoint{Date: date.New(2023, 1, 2), Value: 90_000_000},
		Peak:     marketcap.CapPoint{Date: date.New(2023, 1, 2), Value: 90_000_000},
		Trough:   marketcap.CapPoint{Date: date.New(2023, 1, 1), Value: 50_000_000},
		Tail: []marketcap.CapEntry{
			{Date: date.New(2023, 1, 1), Price: 5, Shares: 10_000_000, Cap: 50_000_000},
			{Date: date.New(2023, 1, 2), Price: 6, Shares: 15_000_000, Cap: 90_000_000},
		},
	}

	got := CapMarkdown(r)

	for _, want := range []string{
		"# Market Capitalization of AAPL",
		"2 days from 2023-01-01 to 2023-01-02",
		"$90,000,000.00",
		"$50,000,000.00",
		"Latest",
		"2023-01-02",
		"15.00", // shares back in millions
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CapMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestCapMarkdown_dropped(t *testing.T) {
	r := &marketcap.CapReport{
		Ticker:   "AAPL",
		Currency: "USD",
		Days:     1,
		Dropped:  3,
		Latest:   marketcap.CapPoint{Date: date.New(2023, 1, 1), Value: 1},
		Peak:     marketcap.CapPoint{Date: date.New(2023, 1, 1), Value: 1},
		Trough:   marketcap.CapPoint{Date: date.New(2023, 1, 1), Value: 1},
		Range:    date.NewRange(date.New(2023, 1, 1), date.New(2023, 1, 1)),
	}
	got := CapMarkdown(r)
	if !strings.Contains(got, "3 input line(s)") {
		t.Errorf("CapMarkdown() does not mention the dropped lines:\n%s", got)
	}
}

func TestCapMarkdown_empty(t *testing.T) {
	r := &marketcap.CapReport{Ticker: "AAPL", Currency: "USD"}
	got := CapMarkdown(r)
	if !strings.Contains(got, "No overlapping data") {
		t.Errorf("CapMarkdown() on empty report:\n%s", got)
	}
}
