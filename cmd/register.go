package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"marketfolio"
)

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	name        string
	birthdate   string
	email       string
	password    string
	phone       string
	dni         string
	nationality string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `mf register -name <name> -email <email> -p <password> [-phone ...] [-dni ...] [-nationality ...] [-birthdate YYYY-MM-DD]

  Creates the account on the backend. Registration does not log in; run
  'mf login' afterwards.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name")
	f.StringVar(&c.birthdate, "birthdate", "", "Birthdate, YYYY-MM-DD")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.phone, "phone", "", "Phone number")
	f.StringVar(&c.dni, "dni", "", "National identity document")
	f.StringVar(&c.nationality, "nationality", "", "Nationality")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "-name, -email and -p are required.")
		return subcommands.ExitUsageError
	}
	profile := marketfolio.Profile{
		Name:        c.name,
		Email:       c.email,
		Password:    c.password,
		Phone:       c.phone,
		DNI:         c.dni,
		Nationality: c.nationality,
	}
	if c.birthdate != "" {
		d, err := time.Parse("2006-01-02", c.birthdate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing birthdate: %v\n", err)
			return subcommands.ExitUsageError
		}
		profile.Birthdate = d
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !a.session.Register(ctx, profile) {
		fmt.Fprintln(os.Stderr, "Registration failed.")
		return subcommands.ExitFailure
	}
	fmt.Println("Account created. Log in with 'mf login'.")
	return subcommands.ExitSuccess
}
