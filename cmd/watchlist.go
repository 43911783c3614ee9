package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"marketfolio"
	"marketfolio/renderer"
	"marketfolio/store"
)

// watchlistCmd holds the flags for the 'watchlist' subcommand.
type watchlistCmd struct {
	typeAsset string
	add       string
	remove    string
}

func (*watchlistCmd) Name() string     { return "watchlist" }
func (*watchlistCmd) Synopsis() string { return "list or edit the followed assets" }
func (*watchlistCmd) Usage() string {
	return `mf watchlist [-type Crypto|Stock]
mf watchlist -add <asset-id> -type Crypto|Stock
mf watchlist -remove <asset-id> -type Crypto|Stock

  Without -add or -remove, lists the followed assets with their current
  prices.
`
}

func (c *watchlistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typeAsset, "type", "", "Asset class: Crypto or Stock")
	f.StringVar(&c.add, "add", "", "Asset id to follow")
	f.StringVar(&c.remove, "remove", "", "Asset id to unfollow")
}

func normalizeAssetType(s string) (string, error) {
	switch strings.ToLower(s) {
	case "crypto":
		return marketfolio.AssetTypeCrypto, nil
	case "stock":
		return marketfolio.AssetTypeStock, nil
	case "":
		return "", nil
	}
	return "", fmt.Errorf("unknown asset type %q", s)
}

func (c *watchlistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typeAsset, err := normalizeAssetType(c.typeAsset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	owner := a.session.UserID()
	if !a.allow(owner) {
		return subcommands.ExitFailure
	}
	watchlists := store.NewWatchlists(a.api)

	if c.add != "" || c.remove != "" {
		if typeAsset == "" {
			fmt.Fprintln(os.Stderr, "-type is required with -add or -remove.")
			return subcommands.ExitUsageError
		}
		entry := marketfolio.Watchlist{UserID: owner, TypeAsset: typeAsset}
		var res store.WriteResult
		var verb string
		if c.add != "" {
			entry.AssetID = c.add
			res, verb = watchlists.Add(ctx, entry), "follow"
		} else {
			entry.AssetID = c.remove
			res, verb = watchlists.Remove(ctx, entry), "unfollow"
		}
		if !res.Applied {
			fmt.Fprintf(os.Stderr, "Cannot %s %q.\n", verb, entry.AssetID)
			return subcommands.ExitFailure
		}
		fmt.Printf("Watchlist updated.\n")
		return subcommands.ExitSuccess
	}

	if !watchlists.GetWatchlists(ctx, owner, typeAsset) {
		fmt.Fprintln(os.Stderr, "Cannot load the watchlist.")
		return subcommands.ExitFailure
	}

	// Join the entries with live market rows for the price column.
	lookup := make(map[string]marketfolio.AssetMarket)
	cryptos := store.NewCryptos(a.api)
	stocks := store.NewStocks(a.api)
	for _, e := range watchlists.Entries() {
		switch e.TypeAsset {
		case marketfolio.AssetTypeCrypto:
			if cryptos.GetCrypto(ctx, e.AssetID) {
				coin := cryptos.Crypto()
				lookup[e.AssetID] = marketfolio.AssetMarket{
					ID:               coin.ID,
					Name:             coin.Name,
					Symbol:           coin.Symbol,
					Price:            coin.CurrentPrice,
					ChangePercentage: coin.PriceChangePercentage24h,
				}
			}
		case marketfolio.AssetTypeStock:
			if stocks.GetStock(ctx, e.AssetID) {
				st := stocks.Stock()
				lookup[e.AssetID] = marketfolio.AssetMarket{
					ID:               st.ID,
					Name:             st.CompanyName,
					Symbol:           st.Symbol,
					Price:            st.Price,
					ChangePercentage: st.ChangesPercentage,
				}
			}
		}
	}

	printMarkdown(renderer.WatchlistMarkdown(watchlists.Entries(), lookup, a.view()))
	return subcommands.ExitSuccess
}
