package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"marketfolio/agent"
	"marketfolio/renderer"
	"marketfolio/store"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `mf assist [initial question]

  Starts a chat grounded on the portfolio and the market overview.
  Needs GEMINI_API_KEY in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
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

	// Gather the reports the advisor may quote from. A failed fetch just
	// leaves that report out of the context.
	var reports []string
	users := store.NewUsers(a.api)
	txs := store.NewTransactions(a.api)
	if users.GetUser(ctx, owner) {
		txs.GetAssets(ctx, owner, "", "")
		reports = append(reports, renderer.PortfolioMarkdown(users.User(), txs.Assets(), a.view()))
	}
	if txs.GetTransactions(ctx, owner) {
		reports = append(reports, renderer.TransactionsMarkdown(txs.Transactions(), a.view()))
	}
	markets := store.NewMarkets(a.api)
	report := renderer.MarketReport{}
	if markets.GetIndices(ctx) {
		report.Indices = markets.Indices()
	}
	if markets.GetCryptosTrending(ctx) {
		report.CryptosTrending = markets.CryptosTrending()
	}
	reports = append(reports, renderer.MarketMarkdown(report, a.view()))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(reports...)
	ag := agent.New(os.Stdout, os.Stdin, advisor)

	if err := ag.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
