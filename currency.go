package marketfolio

import "github.com/Rhymond/go-money"

// Currency is one of the display currencies supported by the dashboard.
// The zero value is not valid; unknown codes degrade to USD behaviour
// everywhere (rate 1, symbol "$").
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
	MXN Currency = "MXN"
	BRL Currency = "BRL"
	INR Currency = "INR"
	RUB Currency = "RUB"
	ZAR Currency = "ZAR"
)

// Currencies returns the supported display currencies in menu order.
func Currencies() []Currency {
	return []Currency{USD, EUR, GBP, JPY, CAD, AUD, CHF, CNY, MXN, BRL, INR, RUB, ZAR}
}

// conversion rates from USD. This table is update-only data maintained by
// hand, it is not derived at runtime.
var conversionRates = map[Currency]float64{
	USD: 1,
	EUR: 0.92,
	GBP: 0.78,
	JPY: 150.5,
	CAD: 1.36,
	AUD: 1.49,
	CHF: 0.91,
	CNY: 7.06,
	MXN: 18.12,
	BRL: 5.14,
	INR: 83.13,
	RUB: 84.48,
	ZAR: 19.58,
}

var currencySymbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	JPY: "¥",
	CAD: "CA$",
	AUD: "A$",
	CHF: "CHF",
	CNY: "¥",
	MXN: "$",
	BRL: "R$",
	INR: "₹",
	RUB: "₽",
	ZAR: "R",
}

var currencyNames = map[Currency]string{
	USD: "United States Dollar",
	EUR: "Euro",
	GBP: "Pound Sterling",
	JPY: "Japanese Yen",
	CAD: "Canadian Dollar",
	AUD: "Australian Dollar",
	CHF: "Swiss Franc",
	CNY: "Chinese Yuan",
	MXN: "Mexican Peso",
	BRL: "Brazilian Real",
	INR: "Indian Rupee",
	RUB: "Russian Ruble",
	ZAR: "South African Rand",
}

// Rate returns the fixed USD conversion rate for c. Unknown currencies are
// treated as USD.
func (c Currency) Rate() float64 {
	if r, ok := conversionRates[c]; ok {
		return r
	}
	return 1
}

// Symbol returns the display symbol for c, falling back to "$".
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return "$"
}

// Name returns the full english name of the currency, e.g. "Pound Sterling".
func (c Currency) Name() string {
	if n, ok := currencyNames[c]; ok {
		return n
	}
	return string(c)
}

// Label returns the settings-menu label, e.g. "£ GBP".
func (c Currency) Label() string { return c.Symbol() + " " + string(c) }

// Known reports whether c belongs to the supported set.
func (c Currency) Known() bool {
	_, ok := conversionRates[c]
	return ok
}

// IsISO reports whether c is a real ISO 4217 code according to the go-money
// registry. All supported currencies are, but preferences read back from
// storage may hold anything.
func (c Currency) IsISO() bool { return money.GetCurrency(string(c)) != nil }

// Convert converts a USD-denominated amount to c at the fixed rate.
func Convert(amountUSD float64, c Currency) float64 { return amountUSD * c.Rate() }

// Language is a UI language selectable in the settings.
type Language string

const (
	Spanish Language = "ES"
	English Language = "EN"
)

// Languages returns the selectable languages.
func Languages() []Language { return []Language{Spanish, English} }

// Label returns the native-name label of the language.
func (l Language) Label() string {
	switch l {
	case Spanish:
		return "Español"
	case English:
		return "English"
	default:
		return string(l)
	}
}

// Known reports whether l belongs to the supported set.
func (l Language) Known() bool { return l == Spanish || l == English }
