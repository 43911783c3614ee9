// Package renderer formats cached dashboard state as markdown reports.
// Everything monetary goes through the currency engine so a report honors
// the display currency and the price-visibility preference.
package renderer

import (
	"fmt"
	"strings"

	"marketfolio"
)

// View carries the display preferences a report is rendered with.
type View struct {
	Currency marketfolio.Currency
	Masked   bool
}

// mdRenderer accumulates a markdown report.
type mdRenderer struct {
	*strings.Builder
	View
}

func newRenderer(v View) *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}, View: v}
}

// Printf formats according to a format specifier and writes to the report.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// price renders a USD amount in the view currency with the symbol in front.
func (r *mdRenderer) price(usd float64) string {
	return marketfolio.FormatPrice(usd, r.Currency, marketfolio.SymbolBefore, r.Masked)
}

// large renders a USD amount with grouping and no decimals.
func (r *mdRenderer) large(usd float64) string {
	if r.Masked {
		return r.mask(usd)
	}
	return marketfolio.FormatLargeNumber(usd, r.Currency, marketfolio.SymbolBefore)
}

// abbr renders a USD amount abbreviated with a magnitude suffix.
func (r *mdRenderer) abbr(usd float64) string {
	if r.Masked {
		return r.mask(usd)
	}
	return marketfolio.FormatAbbreviated(usd, r.Currency, marketfolio.SymbolBefore)
}

// mask hides a USD amount. The mask width follows the converted figure so
// the same value masks identically in every column of a report.
func (r *mdRenderer) mask(usd float64) string {
	return marketfolio.Mask(marketfolio.Convert(usd, r.Currency))
}

// qty renders an asset quantity.
func (r *mdRenderer) qty(amount float64) string {
	return marketfolio.FormatAssetAmount(amount, r.Masked)
}
