package marketfolio

// Theme selects the UI palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Known reports whether t belongs to the supported set.
func (t Theme) Known() bool { return t == ThemeLight || t == ThemeDark }

// ThemeColors is the palette of one theme.
type ThemeColors struct {
	Background    string
	Text          string
	Table         string
	Settings      string
	ColorGray     string
	ColorDarkGray string
}

var themePalettes = map[Theme]ThemeColors{
	ThemeLight: {
		Background:    "#f8f9fa",
		Text:          "#000000",
		Table:         "#e9ecef",
		Settings:      "#e9ecef",
		ColorGray:     "#e9ecef",
		ColorDarkGray: "#d6d2d2",
	},
	ThemeDark: {
		Background:    "#0f0f0f",
		Text:          "#ffffff",
		Table:         "#232323",
		Settings:      "#232323",
		ColorGray:     "#80808062",
		ColorDarkGray: "#232323",
	},
}

// Palette returns the colors of the theme, defaulting to light for anything
// unknown.
func (t Theme) Palette() ThemeColors {
	if p, ok := themePalettes[t]; ok {
		return p
	}
	return themePalettes[ThemeLight]
}

// Preferences are the user's display settings. ShowPrices gates whether
// monetary values are rendered or privacy-masked.
type Preferences struct {
	Language   Language
	Currency   Currency
	Theme      Theme
	ShowPrices bool
}

// DefaultPreferences returns the first-run settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Language:   Spanish,
		Currency:   USD,
		Theme:      ThemeLight,
		ShowPrices: true,
	}
}
