package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio"
	"marketfolio/renderer"
	"marketfolio/store"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	typeAsset string
	id        string
	days      int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "show an asset's price history" }
func (*chartCmd) Usage() string {
	return `mf chart -type crypto|stock -asset <id> [-days <n>]

  Renders the price series of an asset as a sparkline with range figures.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typeAsset, "type", "crypto", "Asset class: crypto or stock")
	f.StringVar(&c.id, "asset", "", "Asset id, e.g. bitcoin or AAPL")
	f.IntVar(&c.days, "days", 30, "Number of days of history")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-asset is required.")
		return subcommands.ExitUsageError
	}
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var points []marketfolio.ChartPoint
	switch c.typeAsset {
	case "crypto":
		s := store.NewCryptos(a.api)
		if !s.GetChart(ctx, c.id, c.days) {
			fmt.Fprintf(os.Stderr, "Cannot fetch the chart of %q.\n", c.id)
			return subcommands.ExitFailure
		}
		points = s.Chart()
	case "stock":
		s := store.NewStocks(a.api)
		if !s.GetChart(ctx, c.id, c.days) {
			fmt.Fprintf(os.Stderr, "Cannot fetch the chart of %q.\n", c.id)
			return subcommands.ExitFailure
		}
		points = s.Chart()
	default:
		fmt.Fprintf(os.Stderr, "Unknown asset type %q.\n", c.typeAsset)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ChartMarkdown(c.id, points, a.view()))
	return subcommands.ExitSuccess
}
