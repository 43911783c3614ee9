package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio/store"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a held asset for wallet cash" }
func (*sellCmd) Usage() string {
	return `mf sell -type crypto|stock -asset <id> (-amount <usd> | -units <quantity>)

  Sells at the current market price. The backend rejects a sale beyond
  the held quantity.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, units, err := c.sides()
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

	txs := store.NewTransactions(a.api)
	var res store.WriteResult
	if c.typeAsset == "crypto" {
		res = txs.SellCrypto(ctx, owner, c.asset, amount, units)
	} else {
		res = txs.SellStock(ctx, owner, c.asset, amount, units)
	}
	if !res.Applied {
		fmt.Fprintln(os.Stderr, "Sell rejected.")
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold %s. Run 'mf portfolio' to see the new balance.\n", c.asset)
	return subcommands.ExitSuccess
}
