package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio/store"
)

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct {
	amount float64
	method int
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add cash to the wallet" }
func (*depositCmd) Usage() string {
	return `mf deposit -amount <usd> [-method <n>]

  Credits cash to the wallet through the given payment method.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount in USD")
	f.IntVar(&c.method, "method", 1, "Payment method number")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "-amount must be positive.")
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
	res := txs.MakeDeposit(ctx, owner, c.amount, c.method)
	if !res.Applied {
		fmt.Fprintln(os.Stderr, "Deposit rejected.")
		return subcommands.ExitFailure
	}
	fmt.Println("Deposit accepted. Run 'mf portfolio' to see the new balance.")
	return subcommands.ExitSuccess
}
