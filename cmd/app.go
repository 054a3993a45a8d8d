// Package cmd implements the CLI application to derive market-capitalization
// series from pasted shares-outstanding data.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	marketcap "github.com/mau1878/marketcapmanual"
	"github.com/mau1878/marketcapmanual/eodhd"
	"github.com/mau1878/marketcapmanual/yahoo"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&buildCmd{},
	&fetchCmd{},
	&plotCmd{},
	&reportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "path to the YAML config file (default $MCAP_CONFIG)")

// loadConfig loads and validates the app configuration.
func loadConfig() (*marketcap.Config, error) {
	cfg, err := marketcap.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// quoter returns the configured price provider.
func quoter(cfg *marketcap.Config) (marketcap.Quoter, error) {
	switch cfg.Provider {
	case "yahoo":
		return yahoo.NewClient(cfg.Proxy), nil
	case "eodhd":
		if cfg.EODHD.APIKey == "" {
			return nil, fmt.Errorf("eodhd API key is not set: use the EODHD_API_KEY environment variable or the config file")
		}
		return eodhd.NewClient(cfg.EODHD.APIKey, cfg.Proxy), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// readInput returns the content of the named file, or of stdin for "" or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input file %q: %w", path, err)
	}
	return string(data), nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be set up.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
