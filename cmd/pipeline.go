package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	marketcap "github.com/mau1878/marketcapmanual"
	"github.com/mau1878/marketcapmanual/date"
)

// capPipeline holds the flags and steps shared by the plot and report
// commands: parse the pasted shares, resolve the date range, obtain prices,
// and merge.
type capPipeline struct {
	input  string
	ticker string
	from   string
	to     string
	prices string
	policy string
}

func (p *capPipeline) setFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "shares input file (default stdin)")
	f.StringVar(&p.ticker, "t", "", "ticker of the security")
	f.StringVar(&p.from, "from", "", "first date to cover (default first share sample)")
	f.StringVar(&p.to, "to", "", "last date to cover (default last share sample)")
	f.StringVar(&p.prices, "prices", "", "read a date<TAB>price file instead of fetching")
	f.StringVar(&p.policy, "policy", "", "merge policy: inner or price (default from config)")
}

// capResult is the outcome of the shared pipeline.
type capResult struct {
	cfg     *marketcap.Config
	policy  marketcap.MergePolicy
	shares  date.History[float64]
	prices  date.History[float64]
	caps    date.History[float64]
	dropped int
}

// run executes the pipeline. It returns a nil result and the exit status to
// report when anything prevents the merge. Empty input and an empty merge
// are both hard stops: there is nothing to render.
func (p *capPipeline) run() (*capResult, subcommands.ExitStatus) {
	if p.ticker == "" {
		fmt.Fprintln(os.Stderr, "-t is required")
		return nil, subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	policyName := p.policy
	if policyName == "" {
		policyName = cfg.Policy
	}
	policy, err := marketcap.ParseMergePolicy(policyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}

	raw, err := readInput(p.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	daily, dropped, err := marketcap.BuildDailyShares(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	if dropped > 0 {
		log.Printf("skipped %d unparseable line(s)", dropped)
	}

	// Like the original's date pickers, the covered range defaults to the
	// range of the pasted share data.
	first, _ := daily.First()
	last, _ := daily.Latest()
	r := date.NewRange(first, last)
	if p.from != "" {
		if r.From, err = date.Parse(p.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -from: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
	}
	if p.to != "" {
		if r.To, err = date.Parse(p.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -to: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
	}
	if !r.IsValid() {
		fmt.Fprintf(os.Stderr, "Error: -from %s is after -to %s\n", r.From, r.To)
		return nil, subcommands.ExitUsageError
	}

	var prices date.History[float64]
	if p.prices != "" {
		file, err := os.Open(p.prices)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open prices file %q: %v\n", p.prices, err)
			return nil, subcommands.ExitFailure
		}
		parsed, err := marketcap.ParsePrices(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, subcommands.ExitFailure
		}
		// The file may cover more than the requested range, serve it like a
		// provider would.
		static := &marketcap.StaticQuoter{Prices: parsed}
		prices, _ = static.DailyCloses(p.ticker, r)
	} else {
		q, err := quoter(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, subcommands.ExitFailure
		}
		log.Printf("fetching %q from %s over %s", p.ticker, q.Name(), r)
		if prices, err = q.DailyCloses(p.ticker, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, subcommands.ExitFailure
		}
	}

	caps := marketcap.MarketCap(daily, prices, policy)
	if caps.Len() == 0 {
		fmt.Fprintf(os.Stderr, "no overlapping data between the share series and the price series over %s\n", r)
		return nil, subcommands.ExitFailure
	}

	return &capResult{
		cfg:     cfg,
		policy:  policy,
		shares:  daily,
		prices:  prices,
		caps:    caps,
		dropped: dropped,
	}, subcommands.ExitSuccess
}
