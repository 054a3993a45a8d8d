// Package renderer builds the markdown report and the HTML chart of the mcap
// tool.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	marketcap "github.com/mau1878/marketcapmanual"
	md "github.com/nao1215/markdown"
)

// CapMarkdown renders a market-capitalization report to a markdown string.
func CapMarkdown(r *marketcap.CapReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Market Capitalization of %s", r.Ticker))

	if r.Days == 0 {
		doc.PlainText("No overlapping data between the share series and the price series.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("%d days from %s to %s, %q merge policy.",
		r.Days, r.Range.From, r.Range.To, r.Policy))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", "Date", "Market Cap"},
		Rows: [][]string{
			{md.Bold("Latest"), r.Latest.Date.String(), marketcap.M(r.Latest.Value, r.Currency).String()},
			{md.Bold("Peak"), r.Peak.Date.String(), marketcap.M(r.Peak.Value, r.Currency).String()},
			{md.Bold("Trough"), r.Trough.Date.String(), marketcap.M(r.Trough.Value, r.Currency).String()},
		},
	})

	doc.H2(fmt.Sprintf("Last %d Days", len(r.Tail)))
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Close", "Shares (M)", "Market Cap"},
		Rows:   [][]string{},
	}
	for _, entry := range r.Tail {
		table.Rows = append(table.Rows, []string{
			entry.Date.String(),
			strconv.FormatFloat(entry.Price, 'f', 2, 64),
			strconv.FormatFloat(entry.Shares/marketcap.SharesScale, 'f', 2, 64),
			marketcap.M(entry.Cap, r.Currency).String(),
		})
	}
	doc.Table(table)

	if r.Dropped > 0 {
		doc.PlainText(fmt.Sprintf("%d input line(s) could not be parsed and were skipped.", r.Dropped))
	}

	return doc.String()
}
