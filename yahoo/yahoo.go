// Package yahoo fetches daily closing prices from the Yahoo Finance chart
// API. It is the default price provider of the mcap tool.
package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	marketcap "github.com/mau1878/marketcapmanual"
	"github.com/mau1878/marketcapmanual/date"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches prices from Yahoo Finance's public chart API.
type Client struct {
	Client    *http.Client
	BaseURL   string
	SymbolMap map[string]string // maps common aliases to Yahoo tickers
}

// NewClient returns a Yahoo client, optionally going through a proxy.
func NewClient(proxy string) *Client {
	return &Client{
		Client:  marketcap.NewClient(proxy),
		BaseURL: defaultBaseURL,
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (c *Client) Name() string { return "yahoo" }

func (c *Client) symbol(ticker string) string {
	if mapped, ok := c.SymbolMap[ticker]; ok {
		return mapped
	}
	return ticker
}

// chart is the response structure from the Yahoo Finance chart API.
type chart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				GMTOffset int64 `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []any `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// DailyCloses implements marketcap.Quoter against the v8 chart endpoint,
// one bar per trading day. The adjusted close is preferred when the response
// carries one.
func (c *Client) DailyCloses(ticker string, r date.Range) (date.History[float64], error) {
	var prices date.History[float64]

	// period2 is exclusive, push it one day past the range end.
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.BaseURL, url.PathEscape(c.symbol(ticker)), r.From.Unix(), r.To.Add(1).Unix())

	req, err := http.NewRequest("GET", addr, nil)
	if err != nil {
		return prices, err
	}
	// Yahoo rejects requests without a browser-looking agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.Client.Do(req)
	if err != nil {
		return prices, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return prices, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return prices, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var data chart
	if err := json.Unmarshal(body, &data); err != nil {
		return prices, fmt.Errorf("yahoo decode: %w", err)
	}
	if data.Chart.Error != nil {
		return prices, fmt.Errorf("yahoo api error: %s", data.Chart.Error.Description)
	}
	if len(data.Chart.Result) == 0 || len(data.Chart.Result[0].Timestamp) == 0 {
		return prices, fmt.Errorf("yahoo: no data returned for %q", ticker)
	}

	result := data.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return prices, fmt.Errorf("yahoo: no quote data returned for %q", ticker)
	}
	closes := result.Indicators.Quote[0].Close
	adjusted := adjustedCloses(body, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		value := closes[i]
		if adjusted != nil {
			value = adjusted[i]
		}
		price, ok := value.(float64)
		if !ok {
			continue // null bars: holidays and halted days
		}
		// Timestamps are exchange-local market opens, shift them to the
		// exchange's calendar day.
		t := time.Unix(ts+result.Meta.GMTOffset, 0).UTC()
		prices.Append(date.FromTime(t), price)
	}
	return prices, nil
}

// adjustedCloses probes the optional adjclose series. It is absent for many
// symbols, so rather than being part of the typed response it is looked up
// loosely in the raw body.
func adjustedCloses(body []byte, n int) []any {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil
	}
	jval, err := jsonpath.Get("$.chart.result[0].indicators.adjclose[0].adjclose", jobj)
	if err != nil {
		return nil
	}
	jlist, ok := jval.([]any)
	if !ok || len(jlist) != n {
		return nil
	}
	return jlist
}

var _ marketcap.Quoter = (*Client)(nil)
