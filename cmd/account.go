package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"marketfolio/api"
	"marketfolio/store"
)

// accountCmd holds the flags for the 'account' subcommand.
type accountCmd struct {
	email    string
	phone    string
	password string
	delete   bool
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "edit or delete the logged-in account" }
func (*accountCmd) Usage() string {
	return `mf account [-email <email>] [-phone <phone>] [-password <password>]
mf account -delete

  Edits the profile fields given; omitted fields are left unchanged.
  -delete removes the account on the backend and logs out.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "New email address")
	f.StringVar(&c.phone, "phone", "", "New phone number")
	f.StringVar(&c.password, "password", "", "New password")
	f.BoolVar(&c.delete, "delete", false, "Delete the account")
}

func (c *accountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	owner := a.session.UserID()
	if !a.allow(owner) {
		return subcommands.ExitFailure
	}
	users := store.NewUsers(a.api)

	if c.delete {
		if !users.DeleteUser(ctx, owner).Applied {
			fmt.Fprintln(os.Stderr, "Cannot delete the account.")
			return subcommands.ExitFailure
		}
		a.session.Logout()
		fmt.Println("Account deleted.")
		return subcommands.ExitSuccess
	}

	update := api.UserUpdate{}
	if c.email != "" {
		update.Email = &c.email
	}
	if c.phone != "" {
		update.Phone = &c.phone
	}
	if c.password != "" {
		update.Password = &c.password
	}
	if update.Email == nil && update.Phone == nil && update.Password == nil {
		fmt.Fprintln(os.Stderr, "Nothing to change. Give -email, -phone or -password.")
		return subcommands.ExitUsageError
	}

	if !users.UpdateUser(ctx, owner, update).Applied {
		fmt.Fprintln(os.Stderr, "Cannot update the profile.")
		return subcommands.ExitFailure
	}
	fmt.Println("Profile updated.")
	return subcommands.ExitSuccess
}
