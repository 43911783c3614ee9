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

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	user int
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show a user's wallet and holdings" }
func (*portfolioCmd) Usage() string {
	return `mf portfolio [-user <id>]

  Shows the cash wallet and the held assets. -user targets another
  account; only an admin may look at someone else's portfolio.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.user, "user", 0, "User id to inspect (admin only)")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	owner := a.owner(c.user)
	if !a.allow(owner) {
		return subcommands.ExitFailure
	}

	users := store.NewUsers(a.api)
	if !users.GetUser(ctx, owner) {
		fmt.Fprintln(os.Stderr, "Cannot load the account.")
		return subcommands.ExitFailure
	}
	txs := store.NewTransactions(a.api)
	txs.GetAssets(ctx, owner, "", "")

	printMarkdown(renderer.PortfolioMarkdown(users.User(), txs.Assets(), a.view()))
	return subcommands.ExitSuccess
}
