package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	marketcap "github.com/mau1878/marketcapmanual"
	"github.com/mau1878/marketcapmanual/date"
)

// buildCmd turns pasted shares-outstanding data into a daily series.
type buildCmd struct {
	input   string
	format  string
	through string
}

func (*buildCmd) Name() string { return "build" }
func (*buildCmd) Synopsis() string {
	return "build a gap-free daily share series from pasted quarterly data"
}
func (*buildCmd) Usage() string {
	return `mcap build [-i <file>] [-format tsv|csv|jsonl] [-through <date>]

  Reads "date<TAB>shares in millions" lines (stdin by default), interpolates
  them to daily granularity and writes the series to stdout. With -through,
  days past the last sample are forward-filled up to that date.
`
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "input file (default stdin)")
	f.StringVar(&c.format, "format", "tsv", "output format: tsv, csv or jsonl")
	f.StringVar(&c.through, "through", "", "forward-fill the series through this date (YYYY-MM-DD)")
}

func (c *buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	raw, err := readInput(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	daily, dropped, err := marketcap.BuildDailyShares(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if dropped > 0 {
		log.Printf("skipped %d unparseable line(s)", dropped)
	}

	if c.through != "" {
		last, err := date.Parse(c.through)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -through: %v\n", err)
			return subcommands.ExitUsageError
		}
		daily = marketcap.ExtendThrough(daily, last)
	}

	switch c.format {
	case "tsv":
		err = marketcap.EncodeSharesTSV(os.Stdout, daily)
	case "csv":
		err = marketcap.EncodeCSV(os.Stdout, "shares", daily)
	case "jsonl":
		err = marketcap.ExportSeries(os.Stdout, "shares", daily)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q: want tsv, csv or jsonl\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
