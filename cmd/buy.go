package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio/store"
)

// tradeFlags are shared by the buy and sell subcommands. A trade names
// either the cash side or the asset side; the backend derives the other.
type tradeFlags struct {
	typeAsset string
	asset     string
	amount    float64
	units     float64
}

func (t *tradeFlags) set(f *flag.FlagSet) {
	f.StringVar(&t.typeAsset, "type", "crypto", "Asset class: crypto or stock")
	f.StringVar(&t.asset, "asset", "", "Asset id, e.g. bitcoin or AAPL")
	f.Float64Var(&t.amount, "amount", 0, "Cash side of the trade in USD")
	f.Float64Var(&t.units, "units", 0, "Asset quantity side of the trade")
}

func (t *tradeFlags) sides() (amount, units *float64, err error) {
	if t.asset == "" {
		return nil, nil, fmt.Errorf("-asset is required")
	}
	if t.typeAsset != "crypto" && t.typeAsset != "stock" {
		return nil, nil, fmt.Errorf("unknown asset type %q", t.typeAsset)
	}
	if (t.amount > 0) == (t.units > 0) {
		return nil, nil, fmt.Errorf("give exactly one of -amount or -units")
	}
	if t.amount > 0 {
		return &t.amount, nil, nil
	}
	return nil, &t.units, nil
}

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy an asset with wallet cash" }
func (*buyCmd) Usage() string {
	return `mf buy -type crypto|stock -asset <id> (-amount <usd> | -units <quantity>)

  Buys at the current market price. The local view is stale until the
  next 'mf portfolio' or 'mf tx' run.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		res = txs.BuyCrypto(ctx, owner, c.asset, amount, units)
	} else {
		res = txs.BuyStock(ctx, owner, c.asset, amount, units)
	}
	if !res.Applied {
		fmt.Fprintln(os.Stderr, "Buy rejected.")
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %s. Run 'mf portfolio' to see the position.\n", c.asset)
	return subcommands.ExitSuccess
}
