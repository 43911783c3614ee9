package marketfolio

import "testing"

func TestRateFallback(t *testing.T) {
	if got := Currency("XXX").Rate(); got != 1 {
		t.Errorf("Rate(XXX) = %v, want 1 (USD fallback)", got)
	}
	if got := Currency("").Rate(); got != 1 {
		t.Errorf("Rate(\"\") = %v, want 1 (USD fallback)", got)
	}
	if got := JPY.Rate(); got != 150.5 {
		t.Errorf("Rate(JPY) = %v, want 150.5", got)
	}
}

func TestSymbolFallback(t *testing.T) {
	tests := []struct {
		c    Currency
		want string
	}{
		{USD, "$"},
		{EUR, "€"},
		{CAD, "CA$"},
		{CHF, "CHF"},
		{ZAR, "R"},
		{Currency("XXX"), "$"},
		{Currency(""), "$"},
	}
	for _, tc := range tests {
		if got := tc.c.Symbol(); got != tc.want {
			t.Errorf("Symbol(%q) = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(100, EUR); got != 92 {
		t.Errorf("Convert(100, EUR) = %v, want 92", got)
	}
	if got := Convert(2, Currency("nope")); got != 2 {
		t.Errorf("Convert(2, unknown) = %v, want 2", got)
	}
}

func TestCurrenciesAreAllKnownISO(t *testing.T) {
	for _, c := range Currencies() {
		if !c.Known() {
			t.Errorf("%s missing from the rate table", c)
		}
		if !c.IsISO() {
			t.Errorf("%s is not a valid ISO 4217 code", c)
		}
		if c.Label() != c.Symbol()+" "+string(c) {
			t.Errorf("Label(%s) = %q", c, c.Label())
		}
	}
}

func TestLanguages(t *testing.T) {
	if got := Spanish.Label(); got != "Español" {
		t.Errorf("Label(ES) = %q", got)
	}
	if Language("FR").Known() {
		t.Error("FR should not be a known language")
	}
}
