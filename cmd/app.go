// Package cmd implements the CLI application over the dashboard state.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"marketfolio"
	"marketfolio/api"
	"marketfolio/renderer"
	"marketfolio/storage"
	"marketfolio/store"
)

// Commands is the list of subcommands a main package registers.
// A main package will call Register on each, and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&loginCmd{},
	&logoutCmd{},
	&registerCmd{},
	&whoamiCmd{},
	&accountCmd{},
	&settingsCmd{},

	&cryptosCmd{},
	&stocksCmd{},
	&marketCmd{},
	&chartCmd{},

	&portfolioCmd{},
	&txCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&buyCmd{},
	&sellCmd{},
	&watchlistCmd{},

	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api-url", "", "Base URL of the backend API (default $MARKETFOLIO_API_URL or http://localhost:5000/api)")
var homeDir = flag.String("home", "", "Directory holding the persisted session and preferences (default $MARKETFOLIO_HOME or the user config dir)")

// currentTheme selects the terminal markdown style. Set on openApp.
var currentTheme = marketfolio.ThemeLight

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// apiBase resolves the backend URL at command time, not at package init:
// main loads a .env file after this package's variables are set, so the
// environment must be read lazily. The flag wins over the environment.
func apiBase() string {
	if *apiURL != "" {
		return *apiURL
	}
	return envOr("MARKETFOLIO_API_URL", "http://localhost:5000/api")
}

// homePath resolves the storage directory, flag first, then MARKETFOLIO_HOME
// through storage.DefaultDir. Lazy for the same .env reason as apiBase.
func homePath() string {
	if *homeDir != "" {
		return *homeDir
	}
	return storage.DefaultDir()
}

// app bundles what every command needs: durable storage, the session, the
// preferences and an API client authorized by the session.
type app struct {
	kv      *storage.Store
	session *store.SessionStore
	prefs   *store.PreferencesStore
	api     *api.Client
}

// openApp restores the persisted state and wires the API client to it.
func openApp() (*app, error) {
	home := homePath()
	kv, err := storage.Open(home)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", home, err)
	}
	session := store.NewSession(kv)
	client := api.New(apiBase(), session)
	session.SetAPI(client)
	prefs := store.NewPreferences(kv)
	currentTheme = prefs.Theme()
	return &app{kv: kv, session: session, prefs: prefs, api: client}, nil
}

// view is the rendering context derived from the preferences.
func (a *app) view() renderer.View {
	return renderer.View{Currency: a.prefs.Currency(), Masked: !a.prefs.ShowPrices()}
}

// allow evaluates the access rules for the private area of ownerID and
// explains a refusal on stderr.
func (a *app) allow(ownerID int) bool {
	d := marketfolio.EvaluateGuard(a.session.Session(), ownerID)
	switch d.Action {
	case marketfolio.Allow:
		return true
	case marketfolio.RedirectLanding:
		fmt.Fprintln(os.Stderr, "This command needs a session. Log in first with 'mf login'.")
	case marketfolio.RedirectOwnArea:
		fmt.Fprintf(os.Stderr, "That area belongs to another user. Yours is %s.\n", d.Path)
	}
	return false
}

// owner resolves the private area a command targets: the -user flag when
// given, the session's own user otherwise.
func (a *app) owner(flagUser int) int {
	if flagUser != 0 {
		return flagUser
	}
	return a.session.UserID()
}

// printMarkdown renders a markdown report to the terminal, themed by the
// user's preference. On a rendering error the raw markdown is printed.
func printMarkdown(doc string) {
	style := "light"
	if currentTheme == marketfolio.ThemeDark {
		style = "dark"
	}
	out, err := glamour.Render(doc, style)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
