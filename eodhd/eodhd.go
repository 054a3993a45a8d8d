// Package eodhd fetches end-of-day prices from eodhd.com. It needs an API
// key, see https://eodhd.com/.
package eodhd

import (
	"fmt"
	"net/http"
	"net/url"

	marketcap "github.com/mau1878/marketcapmanual"
	"github.com/mau1878/marketcapmanual/date"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://eodhd.com"

// Client fetches prices from the EODHD end-of-day API.
type Client struct {
	APIKey  string
	Client  *http.Client
	BaseURL string
}

// NewClient returns an EODHD client, optionally going through a proxy.
func NewClient(apiKey, proxy string) *Client {
	return &Client{
		APIKey:  apiKey,
		Client:  marketcap.NewClient(proxy),
		BaseURL: defaultBaseURL,
	}
}

func (c *Client) Name() string { return "eodhd" }

// DailyCloses implements marketcap.Quoter against the /api/eod endpoint.
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE".
func (c *Client) DailyCloses(ticker string, r date.Range) (date.History[float64], error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	// both bounds are included in the response.
	var prices date.History[float64]

	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		c.BaseURL, url.PathEscape(ticker), c.APIKey, r.From, r.To)

	type info struct {
		Date          date.Date       `json:"date"`
		Close         decimal.Decimal `json:"close"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}

	// that's the payload
	content := make([]info, 0)
	if err := marketcap.JSONGet(c.Client, addr, &content); err != nil {
		return prices, fmt.Errorf("cannot fetch eodhd prices for %q: %w", ticker, err)
	}

	for _, day := range content {
		price := day.Close
		// adjusted_close accounts for splits and dividends, like the
		// original's "Adj Close else Close" rule.
		if !day.AdjustedClose.IsZero() {
			price = day.AdjustedClose
		}
		prices.Append(day.Date, price.InexactFloat64())
	}
	return prices, nil
}

var _ marketcap.Quoter = (*Client)(nil)
