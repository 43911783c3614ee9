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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	user int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "show a user's transaction history" }
func (*txCmd) Usage() string {
	return `mf tx [-user <id>]

  Lists the wallet movements: deposits, withdrawals, buys and sells.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.user, "user", 0, "User id to inspect (admin only)")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	owner := a.owner(c.user)
	if !a.allow(owner) {
		return subcommands.ExitFailure
	}

	txs := store.NewTransactions(a.api)
	if !txs.GetTransactions(ctx, owner) {
		fmt.Fprintln(os.Stderr, "Cannot load the transactions.")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(txs.Transactions(), a.view()))
	return subcommands.ExitSuccess
}
