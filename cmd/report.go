package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	marketcap "github.com/mau1878/marketcapmanual"
	"github.com/mau1878/marketcapmanual/renderer"
)

// reportCmd runs the full pipeline and renders a markdown report on the
// terminal.
type reportCmd struct {
	capPipeline
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "derive the market-cap series and print a report" }
func (*reportCmd) Usage() string {
	return `mcap report -t <ticker> [-i <file>] [-from <date>] [-to <date>] [-policy inner|price] [-prices <file>]

  Same pipeline as plot, but prints a summary (latest, peak, trough and the
  most recent days) instead of writing a chart.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, status := c.run()
	if res == nil {
		return status
	}

	report := marketcap.NewCapReport(c.ticker, res.cfg, res.policy, res.shares, res.prices, res.caps)
	report.Dropped = res.dropped
	printMarkdown(renderer.CapMarkdown(report))
	return subcommands.ExitSuccess
}
