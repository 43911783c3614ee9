package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"marketfolio"
)

// settingsCmd holds the flags for the 'settings' subcommand.
type settingsCmd struct {
	currency   string
	language   string
	theme      string
	hidePrices bool
	showPrices bool
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the display preferences" }
func (*settingsCmd) Usage() string {
	return `mf settings [-currency <code>] [-language <code>] [-theme light|dark] [-hide-prices|-show-prices]

  Without flags, prints the current preferences and the supported values.
  Each change is validated and persisted immediately.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Display currency code, e.g. EUR")
	f.StringVar(&c.language, "language", "", "Interface language, ES or EN")
	f.StringVar(&c.theme, "theme", "", "Color theme, light or dark")
	f.BoolVar(&c.hidePrices, "hide-prices", false, "Mask monetary values in reports")
	f.BoolVar(&c.showPrices, "show-prices", false, "Show monetary values in reports")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.currency != "" {
		cur := marketfolio.Currency(strings.ToUpper(c.currency))
		if !cur.Known() {
			fmt.Fprintf(os.Stderr, "Unknown currency %q. Supported: %s\n", c.currency, currencyList())
			return subcommands.ExitUsageError
		}
		a.prefs.SetCurrency(cur)
		changed = true
	}
	if c.language != "" {
		lang := marketfolio.Language(strings.ToUpper(c.language))
		if !lang.Known() {
			fmt.Fprintf(os.Stderr, "Unknown language %q. Supported: ES, EN\n", c.language)
			return subcommands.ExitUsageError
		}
		a.prefs.SetLanguage(lang)
		changed = true
	}
	if c.theme != "" {
		theme := marketfolio.Theme(strings.ToLower(c.theme))
		if !theme.Known() {
			fmt.Fprintf(os.Stderr, "Unknown theme %q. Supported: light, dark\n", c.theme)
			return subcommands.ExitUsageError
		}
		a.prefs.SetTheme(theme)
		changed = true
	}
	if c.hidePrices {
		a.prefs.SetShowPrices(false)
		changed = true
	}
	if c.showPrices {
		a.prefs.SetShowPrices(true)
		changed = true
	}

	if changed {
		fmt.Println("Preferences saved.")
		return subcommands.ExitSuccess
	}

	p := a.prefs.Preferences()
	fmt.Printf("Currency:  %s\n", p.Currency.Label())
	fmt.Printf("Language:  %s\n", p.Language.Label())
	fmt.Printf("Theme:     %s\n", p.Theme)
	fmt.Printf("Prices:    %s\n", visibility(p.ShowPrices))
	fmt.Printf("\nSupported currencies: %s\n", currencyList())
	return subcommands.ExitSuccess
}

func visibility(show bool) string {
	if show {
		return "visible"
	}
	return "masked"
}

func currencyList() string {
	var codes []string
	for _, c := range marketfolio.Currencies() {
		codes = append(codes, string(c))
	}
	return strings.Join(codes, ", ")
}
