package marketcap

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mau1878/marketcapmanual/date"
)

// this file contains functions to serialize a daily series, and to read back
// an externally supplied price file.
// The TSV form deliberately matches the paste format ParseShares reads, so a
// serialized share series can be fed straight back into the builder.

// EncodeSharesTSV writes a share series as "date<TAB>millions" lines,
// undoing the parser's scaling. Floats are written in their shortest
// round-trip form, so feeding the output back to ParseShares reproduces the
// series exactly.
func EncodeSharesTSV(w io.Writer, h date.History[float64]) error {
	bw := bufio.NewWriter(w)
	for on, value := range h.Values() {
		fmt.Fprintf(bw, "%s\t%s\n", on, strconv.FormatFloat(value/SharesScale, 'f', -1, 64))
	}
	return bw.Flush()
}

// EncodeTSV writes a series as "date<TAB>value" lines with unscaled values,
// the format ParsePrices reads.
func EncodeTSV(w io.Writer, h date.History[float64]) error {
	bw := bufio.NewWriter(w)
	for on, value := range h.Values() {
		fmt.Fprintf(bw, "%s\t%s\n", on, strconv.FormatFloat(value, 'f', -1, 64))
	}
	return bw.Flush()
}

// EncodeCSV writes a series as a two-column CSV with a header line. Values
// are written unscaled.
func EncodeCSV(w io.Writer, name string, h date.History[float64]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "date,%s\n", name)
	for on, value := range h.Values() {
		fmt.Fprintf(bw, "%s,%s\n", on, strconv.FormatFloat(value, 'f', -1, 64))
	}
	return bw.Flush()
}

// ExportSeries writes a series to 'w' in the import/export format: a single
// JSONL line whose property 'ticker' names the series and whose property
// 'history' is one json object mapping dates to values.
func ExportSeries(w io.Writer, ticker string, h date.History[float64]) error {
	js := jseries{Ticker: ticker, History: make(map[string]float64, h.Len())}
	for on, value := range h.Values() {
		js.History[on.String()] = value
	}
	data, err := json.Marshal(js)
	if err != nil {
		return fmt.Errorf("cannot marshal series %q: %w", ticker, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write series format: %w", err)
	}
	return nil
}

// ImportSeries reads back series in the import/export format, one JSONL
// object per line, keyed by ticker.
func ImportSeries(r io.Reader) (map[string]date.History[float64], error) {
	series := make(map[string]date.History[float64])
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jseries
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("cannot parse line for series import format: %q: %w", string(line), err)
		}
		var h date.History[float64]
		for day, value := range js.History {
			on, err := date.Parse(day)
			if err != nil {
				return nil, fmt.Errorf("cannot parse series %q: %w", js.Ticker, err)
			}
			h.Append(on, value)
		}
		series[js.Ticker] = h
	}
	return series, scanner.Err()
}

// the readable version of the format can be summarized by one type.
type jseries struct {
	Ticker  string             `json:"ticker"`
	History map[string]float64 `json:"history"`
}

// ParsePrices reads an externally supplied "date<TAB>price" file into a
// daily price series. Unlike the pasted share block this format is machine
// written, so any malformed line is an error rather than noise.
func ParsePrices(r io.Reader) (date.History[float64], error) {
	var prices date.History[float64]
	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		row := scanner.Text()
		if strings.TrimSpace(row) == "" {
			continue
		}
		field, rest, found := strings.Cut(row, "\t")
		if !found {
			return prices, fmt.Errorf("invalid price line %d: got %q", line, row)
		}
		on, err := date.Parse(strings.TrimSpace(field))
		if err != nil {
			return prices, fmt.Errorf("invalid price line %d: %w", line, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return prices, fmt.Errorf("invalid price line %d: invalid number %q", line, strings.TrimSpace(rest))
		}
		prices.Append(on, value)
	}
	return prices, scanner.Err()
}
