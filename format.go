package marketfolio

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SymbolPosition says where the currency symbol goes relative to the number.
// The empty value omits the symbol entirely.
type SymbolPosition string

const (
	NoSymbol     SymbolPosition = ""
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// HiddenPlaceholder is the mask emitted when the underlying value is absent
// while prices are hidden.
const HiddenPlaceholder = "****"

// FormatPrice converts a USD amount to c and formats it with tiered precision.
// The tier is chosen on the magnitude of the converted value, never on the raw
// USD amount:
//
//	|v| <  1e-8  -> canonical "0"
//	|v| <  1e-4  -> 8 decimals
//	|v| <  1     -> 4 decimals
//	|v| <  10000 -> 2 decimals
//	otherwise    -> 0 decimals
//
// Numbers are grouped with a dot and use a decimal comma, whatever the UI
// language. When masked is true the numeric value is replaced by a privacy
// mask and no symbol is attached.
func FormatPrice(amountUSD float64, c Currency, pos SymbolPosition, masked bool) string {
	converted := Convert(amountUSD, c)
	if masked {
		return Mask(converted)
	}

	a := abs(converted)
	var formatted string
	switch {
	case a < 1e-8:
		formatted = "0"
	case a < 1e-4:
		formatted = groupDecimalComma(converted, 8)
	case a >= 10000:
		formatted = groupDecimalComma(converted, 0)
	case a >= 1:
		formatted = groupDecimalComma(converted, 2)
	default:
		formatted = groupDecimalComma(converted, 4)
	}
	return withSymbol(formatted, c, pos)
}

// FormatLargeNumber converts and renders with thousands grouping and no
// decimals (comma grouping). Used for market caps, volumes and supply figures.
func FormatLargeNumber(amountUSD float64, c Currency, pos SymbolPosition) string {
	return withSymbol(groupDecimalPoint(Convert(amountUSD, c), 0), c, pos)
}

// FormatAbbreviated converts and scales the value to a 2-decimal magnitude
// suffix: T, B, M or K. Values below a thousand keep a plain 2-decimal form.
func FormatAbbreviated(amountUSD float64, c Currency, pos SymbolPosition) string {
	converted := Convert(amountUSD, c)

	var formatted string
	switch {
	case converted >= 1e12:
		formatted = fixed(converted/1e12, 2) + "T"
	case converted >= 1e9:
		formatted = fixed(converted/1e9, 2) + "B"
	case converted >= 1e6:
		formatted = fixed(converted/1e6, 2) + "M"
	case converted >= 1e3:
		formatted = fixed(converted/1e3, 2) + "K"
	default:
		formatted = fixed(converted, 2)
	}
	return withSymbol(formatted, c, pos)
}

// FormatAssetAmount renders an asset quantity, independent of any currency:
// a million or more drops the decimals, one or more keeps two, a fraction
// keeps up to 8 decimals with trailing zeros trimmed but never below 4 shown.
// Zero and negative quantities collapse to the fixed "0.0000".
func FormatAssetAmount(amount float64, masked bool) string {
	if masked {
		return Mask(amount)
	}
	switch {
	case amount <= 0:
		return "0.0000"
	case amount >= 1_000_000:
		return groupDecimalPoint(amount, 0)
	case amount >= 1:
		return groupDecimalPoint(amount, 2)
	}
	s := fixed(amount, 8)
	// trim trailing zeros, keeping at least 4 decimal digits
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		min := dot + 1 + 4
		for len(s) > min && s[len(s)-1] == '0' {
			s = s[:len(s)-1]
		}
	}
	return s
}

// Mask replaces a numeric display with a run of '*' whose length follows the
// digit count of the 2-decimal rendering of the absolute value, clamped to
// [4,10]. The width tracks the hidden magnitude without revealing it exactly.
func Mask(value float64) string {
	s := fixed(abs(value), 2)
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	if n < 4 {
		n = 4
	}
	if n > 10 {
		n = 10
	}
	return strings.Repeat("*", n)
}

func withSymbol(value string, c Currency, pos SymbolPosition) string {
	switch pos {
	case SymbolBefore:
		return c.Symbol() + value
	case SymbolAfter:
		return value + " " + c.Symbol()
	default:
		return value
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// fixed renders v with exactly the given decimals, plain ASCII, no grouping.
func fixed(v float64, decimals int32) string {
	return decimal.NewFromFloat(v).StringFixed(decimals)
}

// groupDecimalComma formats with dot thousands separators and a decimal comma.
func groupDecimalComma(v float64, decimals int32) string {
	return groupDigits(fixed(v, decimals), ".", ",")
}

// groupDecimalPoint formats with comma thousands separators and a decimal point.
func groupDecimalPoint(v float64, decimals int32) string {
	return groupDigits(fixed(v, decimals), ",", ".")
}

// groupDigits reworks a plain fixed-point string ("-12345.67") into a grouped
// one using the given thousands and decimal separators.
func groupDigits(s, thousands, point string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousands)
		}
		b.WriteRune(d)
	}
	if fracPart != "" {
		b.WriteString(point)
		b.WriteString(fracPart)
	}
	return b.String()
}
