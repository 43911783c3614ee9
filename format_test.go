package marketfolio

import "testing"

func TestFormatPriceTiers(t *testing.T) {
	tests := []struct {
		name string
		usd  float64
		c    Currency
		pos  SymbolPosition
		want string
	}{
		{"near zero collapses", 1e-9, USD, NoSymbol, "0"},
		{"tiny keeps 8 decimals", 0.00005, USD, NoSymbol, "0,00005000"},
		{"sub unit keeps 4 decimals", 0.5, USD, NoSymbol, "0,5000"},
		{"unit range keeps 2 decimals", 1234.5, USD, NoSymbol, "1.234,50"},
		{"large drops decimals", 12345678.9, USD, NoSymbol, "12.345.679"},
		{"negative large", -54321, USD, NoSymbol, "-54.321"},
		{"symbol before", 1234.5, USD, SymbolBefore, "$1.234,50"},
		{"symbol after", 1234.5, EUR, SymbolAfter, "1.135,74 €"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPrice(tc.usd, tc.c, tc.pos, false); got != tc.want {
				t.Errorf("FormatPrice(%v, %s, %q) = %q, want %q", tc.usd, tc.c, tc.pos, got, tc.want)
			}
		})
	}
}

// The precision tier must depend on the converted magnitude, not the raw USD
// amount: 70 USD sits in the 2-decimal tier, but the same amount in JPY
// crosses the 10000 threshold and drops its decimals.
func TestFormatPriceTierFollowsConvertedValue(t *testing.T) {
	if got := FormatPrice(70, USD, NoSymbol, false); got != "70,00" {
		t.Errorf("FormatPrice(70, USD) = %q, want %q", got, "70,00")
	}
	if got := FormatPrice(70, JPY, NoSymbol, false); got != "10.535" {
		t.Errorf("FormatPrice(70, JPY) = %q, want %q", got, "10.535")
	}
	// and the other way: a sub-cent USD value becomes a 2-decimal INR value.
	if got := FormatPrice(0.5, INR, NoSymbol, false); got != "41,57" {
		t.Errorf("FormatPrice(0.5, INR) = %q, want %q", got, "41,57")
	}
}

func TestFormatPriceIsPure(t *testing.T) {
	first := FormatPrice(987.6, BRL, SymbolAfter, false)
	second := FormatPrice(987.6, BRL, SymbolAfter, false)
	if first != second {
		t.Errorf("FormatPrice not deterministic: %q then %q", first, second)
	}
}

func TestFormatPriceMasked(t *testing.T) {
	if got := FormatPrice(0, USD, SymbolBefore, true); got != "****" {
		t.Errorf("masked zero = %q, want \"****\"", got)
	}
	if got := FormatPrice(1234.5, USD, SymbolAfter, true); got != "******" {
		t.Errorf("masked 1234.50 = %q, want 6 stars", got)
	}
	// the visible zero keeps its symbol placement
	if got := FormatPrice(0, USD, SymbolBefore, false); got != "$0" {
		t.Errorf("visible zero = %q, want \"$0\"", got)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "****"},                    // "0.00" has 3 digits, clamped up
		{9.5, "****"},                  // "9.50"
		{1234.5, "******"},             // "1234.50"
		{-1234.5, "******"},            // sign ignored
		{123456789.12, "**********"},   // 11 digits, clamped down
		{98765432109876, "**********"}, // way past the clamp
	}
	for _, tc := range tests {
		if got := Mask(tc.value); got != tc.want {
			t.Errorf("Mask(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatLargeNumber(t *testing.T) {
	if got := FormatLargeNumber(1234567.89, USD, NoSymbol); got != "1,234,568" {
		t.Errorf("FormatLargeNumber = %q, want %q", got, "1,234,568")
	}
	if got := FormatLargeNumber(1000, JPY, SymbolAfter); got != "150,500 ¥" {
		t.Errorf("FormatLargeNumber JPY = %q, want %q", got, "150,500 ¥")
	}
}

func TestFormatAbbreviated(t *testing.T) {
	tests := []struct {
		usd  float64
		c    Currency
		pos  SymbolPosition
		want string
	}{
		{2.5e12, USD, NoSymbol, "2.50T"},
		{3.21e9, USD, NoSymbol, "3.21B"},
		{7.5e6, USD, NoSymbol, "7.50M"},
		{1500, USD, NoSymbol, "1.50K"},
		{999, USD, NoSymbol, "999.00"},
		{-5, USD, NoSymbol, "-5.00"},
		{1e9, EUR, SymbolBefore, "€920.00M"},
	}
	for _, tc := range tests {
		if got := FormatAbbreviated(tc.usd, tc.c, tc.pos); got != tc.want {
			t.Errorf("FormatAbbreviated(%v, %s) = %q, want %q", tc.usd, tc.c, got, tc.want)
		}
	}
}

func TestFormatAssetAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "0.0000"},
		{"negative", -3, "0.0000"},
		{"fraction trims to four", 0.5, "0.5000"},
		{"fraction keeps significant digits", 0.000123456, "0.00012346"},
		{"fraction trims middle zeros kept", 0.10005, "0.10005"},
		{"unit", 2.5, "2.50"},
		{"thousands grouped", 54321.7, "54,321.70"},
		{"millions drop decimals", 1234567.2, "1,234,567"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatAssetAmount(tc.amount, false); got != tc.want {
				t.Errorf("FormatAssetAmount(%v) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}

	if got := FormatAssetAmount(1234.5, true); got != "******" {
		t.Errorf("masked quantity = %q, want 6 stars", got)
	}
}
