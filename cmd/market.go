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

// marketCmd holds the flags for the 'market' subcommand.
type marketCmd struct {
	refresh string
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "show the cross-asset market overview" }
func (*marketCmd) Usage() string {
	return `mf market [-refresh <aggregate>]

  Shows the indices, trending lists, gainers, losers and most actives.
  -refresh asks the backend to recompute one aggregate (admin only):
  marketcap, feargreed, cmc100, trending-cryptos, trending-stocks,
  gainers, losers, most-actives.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.refresh, "refresh", "", "Aggregate to recompute before the report")
}

func (c *marketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	markets := store.NewMarkets(a.api)

	if c.refresh != "" {
		// Recomputation is an admin write; the guard never lets a plain
		// user through because an aggregate has no single owner.
		if a.session.Role() != marketfolio.RoleAdmin {
			fmt.Fprintln(os.Stderr, "Only an admin can refresh market aggregates.")
			return subcommands.ExitFailure
		}
		res, err := refreshAggregate(ctx, markets, c.refresh)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !res.Applied {
			fmt.Fprintf(os.Stderr, "Refresh of %q was rejected.\n", c.refresh)
			return subcommands.ExitFailure
		}
	}

	report := renderer.MarketReport{}
	if markets.GetIndices(ctx) {
		report.Indices = markets.Indices()
	}
	if markets.GetCryptosTrending(ctx) {
		report.CryptosTrending = markets.CryptosTrending()
	}
	if markets.GetStocksTrending(ctx) {
		report.StocksTrending = markets.StocksTrending()
	}
	if markets.GetGainers(ctx) {
		report.Gainers = markets.Gainers()
	}
	if markets.GetLosers(ctx) {
		report.Losers = markets.Losers()
	}
	if markets.GetMostActives(ctx) {
		report.MostActives = markets.MostActives()
	}

	printMarkdown(renderer.MarketMarkdown(report, a.view()))
	return subcommands.ExitSuccess
}

func refreshAggregate(ctx context.Context, markets *store.MarketsStore, name string) (store.WriteResult, error) {
	switch name {
	case "marketcap":
		return markets.RefreshTotalMarketCap(ctx), nil
	case "feargreed":
		return markets.RefreshFearGreedIndex(ctx), nil
	case "cmc100":
		return markets.RefreshCMC100Index(ctx), nil
	case "trending-cryptos":
		return markets.RefreshCryptosTrending(ctx), nil
	case "trending-stocks":
		return markets.RefreshStocksTrending(ctx), nil
	case "gainers":
		return markets.RefreshStocksGainers(ctx), nil
	case "losers":
		return markets.RefreshStocksLosers(ctx), nil
	case "most-actives":
		return markets.RefreshStocksMostActives(ctx), nil
	}
	return store.WriteResult{}, fmt.Errorf("unknown aggregate %q", name)
}
