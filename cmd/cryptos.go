package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio/api"
	"marketfolio/renderer"
	"marketfolio/store"
)

// cryptosCmd holds the flags for the 'cryptos' subcommand.
type cryptosCmd struct {
	sort   string
	order  string
	search string
	id     string
}

func (*cryptosCmd) Name() string     { return "cryptos" }
func (*cryptosCmd) Synopsis() string { return "list, inspect or search cryptocurrencies" }
func (*cryptosCmd) Usage() string {
	return `mf cryptos [-sort rank|name|price|change|marketcap] [-order asc|desc]
mf cryptos -id <coin-id>
mf cryptos -search <query>

  Lists the crypto market, one coin in detail, or free-text matches.
`
}

func (c *cryptosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "rank", "Sort key: rank, name, price, change or marketcap")
	f.StringVar(&c.order, "order", "asc", "Sort order: asc or desc")
	f.StringVar(&c.search, "search", "", "Free-text search query")
	f.StringVar(&c.id, "id", "", "Coin id to inspect, e.g. bitcoin")
}

// sortKey maps the flag value to the backend's sort key integer.
func sortKey(name string) (int, error) {
	switch name {
	case "rank":
		return api.SortByRank, nil
	case "name":
		return api.SortByName, nil
	case "price":
		return api.SortByPrice, nil
	case "change":
		return api.SortByChange24h, nil
	case "marketcap":
		return api.SortByMarketCap, nil
	}
	return 0, fmt.Errorf("unknown sort key %q", name)
}

func sortOrder(name string) (int, error) {
	switch name {
	case "asc":
		return api.OrderAsc, nil
	case "desc":
		return api.OrderDesc, nil
	}
	return 0, fmt.Errorf("unknown order %q", name)
}

func (c *cryptosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cryptos := store.NewCryptos(a.api)

	if c.search != "" {
		matches := cryptos.SearchCryptos(ctx, c.search)
		printMarkdown(renderer.CryptosMarkdown(matches, a.view()))
		return subcommands.ExitSuccess
	}
	if c.id != "" {
		if !cryptos.GetCrypto(ctx, c.id) {
			fmt.Fprintf(os.Stderr, "Cannot fetch %q.\n", c.id)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.CryptoMarkdown(cryptos.Crypto(), a.view()))
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
	if !cryptos.GetCryptos(ctx, sortBy, order) {
		fmt.Fprintln(os.Stderr, "Cannot fetch the crypto market.")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CryptosMarkdown(cryptos.Cryptos(), a.view()))
	return subcommands.ExitSuccess
}
