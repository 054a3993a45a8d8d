package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/mau1878/marketcapmanual/renderer"
)

// plotCmd runs the full pipeline and writes an HTML line chart.
type plotCmd struct {
	capPipeline
	output string
}

func (*plotCmd) Name() string     { return "plot" }
func (*plotCmd) Synopsis() string { return "derive the market-cap series and write an HTML chart" }
func (*plotCmd) Usage() string {
	return `mcap plot -t <ticker> [-i <file>] [-from <date>] [-to <date>] [-policy inner|price] [-prices <file>] [-o <file>]

  Parses pasted "date<TAB>shares in millions" lines (stdin by default),
  fetches daily closing prices for the ticker, multiplies the two series and
  writes the market-capitalization chart as a standalone HTML page.
`
}

func (c *plotCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.output, "o", "marketcap.html", "output HTML file")
}

func (c *plotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, status := c.run()
	if res == nil {
		return status
	}

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := renderer.WriteChart(file, c.ticker, res.caps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot render chart: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("wrote %s (%d days)", c.output, res.caps.Len())
	return subcommands.ExitSuccess
}
