package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio/store"
)

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the current session and profile" }
func (*whoamiCmd) Usage() string {
	return `mf whoami

  Shows who is logged in and the profile stored on the backend.
`
}

func (c *whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !a.session.IsLoggedIn() {
		fmt.Println("Not logged in.")
		return subcommands.ExitSuccess
	}

	users := store.NewUsers(a.api)
	if !users.GetUser(ctx, a.session.UserID()) {
		fmt.Fprintln(os.Stderr, "Cannot load the profile.")
		return subcommands.ExitFailure
	}
	u := users.User()
	fmt.Printf("User %d (%s)\n", u.ID, a.session.Role())
	fmt.Printf("  Name:  %s\n", u.Name)
	fmt.Printf("  Email: %s\n", u.Email)
	if u.Phone != "" {
		fmt.Printf("  Phone: %s\n", u.Phone)
	}
	return subcommands.ExitSuccess
}
