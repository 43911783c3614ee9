package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio/store"
)

// withdrawCmd holds the flags for the 'withdraw' subcommand.
type withdrawCmd struct {
	amount float64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "take cash out of the wallet" }
func (*withdrawCmd) Usage() string {
	return `mf withdraw -amount <usd>

  Debits cash from the wallet. The backend rejects a withdrawal beyond
  the available cash.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount in USD")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	res := txs.MakeWithdrawal(ctx, owner, c.amount)
	if !res.Applied {
		fmt.Fprintln(os.Stderr, "Withdrawal rejected.")
		return subcommands.ExitFailure
	}
	fmt.Println("Withdrawal accepted. Run 'mf portfolio' to see the new balance.")
	return subcommands.ExitSuccess
}
