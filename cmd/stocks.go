package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio/renderer"
	"marketfolio/store"
)

// stocksCmd holds the flags for the 'stocks' subcommand.
type stocksCmd struct {
	sort     string
	order    string
	search   string
	id       string
	trending bool
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list, inspect or search stocks" }
func (*stocksCmd) Usage() string {
	return `mf stocks [-sort rank|name|price|change|marketcap] [-order asc|desc]
mf stocks -id <symbol>
mf stocks -search <query>
mf stocks -trending

  Lists the equity market, one company in detail, free-text matches, or
  the trending equities.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "rank", "Sort key: rank, name, price, change or marketcap")
	f.StringVar(&c.order, "order", "asc", "Sort order: asc or desc")
	f.StringVar(&c.search, "search", "", "Free-text search query")
	f.StringVar(&c.id, "id", "", "Stock symbol to inspect, e.g. AAPL")
	f.BoolVar(&c.trending, "trending", false, "Show the trending equities")
}

func (c *stocksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	stocks := store.NewStocks(a.api)

	if c.search != "" {
		matches := stocks.SearchStocks(ctx, c.search)
		printMarkdown(renderer.StocksMarkdown(matches, a.view()))
		return subcommands.ExitSuccess
	}
	if c.id != "" {
		if !stocks.GetStock(ctx, c.id) {
			fmt.Fprintf(os.Stderr, "Cannot fetch %q.\n", c.id)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.StockMarkdown(stocks.Stock(), a.view()))
		return subcommands.ExitSuccess
	}
	if c.trending {
		if !stocks.GetTrending(ctx) {
			fmt.Fprintln(os.Stderr, "Cannot fetch the trending equities.")
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.MarketMarkdown(renderer.MarketReport{StocksTrending: stocks.Trending()}, a.view()))
		return subcommands.ExitSuccess
	}

	sortBy, err := sortKey(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	order, err := sortOrder(c.order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !stocks.GetStocks(ctx, sortBy, order) {
		fmt.Fprintln(os.Stderr, "Cannot fetch the stock market.")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StocksMarkdown(stocks.Stocks(), a.view()))
	return subcommands.ExitSuccess
}
