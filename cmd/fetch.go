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

// fetchCmd downloads a daily close series from the configured provider.
type fetchCmd struct {
	ticker string
	from   string
	to     string
	format string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch daily closing prices for a ticker" }
func (*fetchCmd) Usage() string {
	return `mcap fetch -t <ticker> -from <date> [-to <date>] [-format tsv|csv|jsonl]

  Fetches one close per trading day from the configured provider and writes
  the series to stdout. -to defaults to today.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker to fetch")
	f.StringVar(&c.from, "from", "", "first date to fetch (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "last date to fetch (default today)")
	f.StringVar(&c.format, "format", "tsv", "output format: tsv, csv or jsonl")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.from == "" {
		fmt.Fprintln(os.Stderr, "-t and -from are required")
		return subcommands.ExitUsageError
	}
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to := date.Today()
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	r := date.NewRange(from, to)
	if !r.IsValid() {
		fmt.Fprintf(os.Stderr, "Error: -from %s is after -to %s\n", from, to)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	q, err := quoter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	log.Printf("fetching %q from %s over %s", c.ticker, q.Name(), r)
	prices, err := q.DailyCloses(c.ticker, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if prices.Len() == 0 {
		fmt.Fprintf(os.Stderr, "no prices for %q over %s\n", c.ticker, r)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "tsv":
		err = marketcap.EncodeTSV(os.Stdout, prices)
	case "csv":
		err = marketcap.EncodeCSV(os.Stdout, "close", prices)
	case "jsonl":
		err = marketcap.ExportSeries(os.Stdout, c.ticker, prices)
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
