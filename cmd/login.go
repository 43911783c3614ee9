package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// loginCmd holds the flags for the 'login' subcommand.
type loginCmd struct {
	identifier string
	password   string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and persist the session" }
func (*loginCmd) Usage() string {
	return `mf login -u <email-or-phone> -p <password>

  Exchanges the credentials for a token and resolves the account behind
  them. The session persists across runs until 'mf logout'.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.identifier, "u", "", "Email or phone of the account")
	f.StringVar(&c.password, "p", "", "Password")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.identifier == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Both -u and -p are required.")
		return subcommands.ExitUsageError
	}
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !a.session.Login(ctx, c.identifier, c.password) {
		fmt.Fprintln(os.Stderr, "Login failed.")
		return subcommands.ExitFailure
	}
	fmt.Printf("Logged in as user %d (%s).\n", a.session.UserID(), a.session.Role())
	return subcommands.ExitSuccess
}
