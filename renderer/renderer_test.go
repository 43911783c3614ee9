package renderer

import (
	"strings"
	"testing"
	"time"

	"marketfolio"
)

func TestCryptosMarkdown(t *testing.T) {
	cryptos := []marketfolio.Crypto{{
		Name:                     "Bitcoin",
		Symbol:                   "BTC",
		CurrentPrice:             500,
		MarketCap:                1.5e9,
		PriceChangePercentage24h: 2.5,
		PriceChangePercentage7d:  -1.2,
	}}
	got := CryptosMarkdown(cryptos, View{Currency: marketfolio.USD})

	for _, want := range []string{
		"# Cryptocurrencies",
		"| Bitcoin | BTC | $500,00 | +2.50% | -1.20% | $1.50B |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report misses %q:\n%s", want, got)
		}
	}
}

func TestCryptosMarkdownEmpty(t *testing.T) {
	got := CryptosMarkdown(nil, View{Currency: marketfolio.USD})
	if !strings.Contains(got, "No data cached") {
		t.Errorf("empty report = %q", got)
	}
}

func TestMaskedReportHidesFigures(t *testing.T) {
	cryptos := []marketfolio.Crypto{{Name: "Bitcoin", Symbol: "BTC", CurrentPrice: 500}}
	got := CryptosMarkdown(cryptos, View{Currency: marketfolio.USD, Masked: true})
	if strings.Contains(got, "500") {
		t.Errorf("masked report leaks the price:\n%s", got)
	}
	if !strings.Contains(got, "*****") {
		t.Errorf("masked report has no mask:\n%s", got)
	}
}

func TestMarketMarkdownDropsEmptySections(t *testing.T) {
	m := MarketReport{
		Gainers: []marketfolio.AssetMarket{{Name: "Nvidia", Symbol: "NVDA", Price: 120, ChangePercentage: 4.2}},
	}
	got := MarketMarkdown(m, View{Currency: marketfolio.USD})

	if !strings.Contains(got, "## Top Gainers") {
		t.Errorf("gainers section missing:\n%s", got)
	}
	if !strings.Contains(got, "| Nvidia | NVDA | $120,00 | +4.20% |") {
		t.Errorf("gainers row missing:\n%s", got)
	}
	for _, absent := range []string{"## Indices", "## Top Losers", "## Trending Cryptos", "## Most Active"} {
		if strings.Contains(got, absent) {
			t.Errorf("empty section %q rendered:\n%s", absent, got)
		}
	}
}

func TestPortfolioMarkdownCash(t *testing.T) {
	u := marketfolio.User{Name: "Ana", Cash: 1234.56, Wallet: 500, Profit: -20}
	got := PortfolioMarkdown(u, nil, View{Currency: marketfolio.USD})

	if !strings.Contains(got, "# Portfolio of Ana") {
		t.Errorf("title missing:\n%s", got)
	}
	if !strings.Contains(got, "| Cash | $1,234.56 |") {
		t.Errorf("cash row missing:\n%s", got)
	}
	if !strings.Contains(got, "No holdings.") {
		t.Errorf("empty holdings note missing:\n%s", got)
	}
}

func TestPortfolioMarkdownHoldings(t *testing.T) {
	u := marketfolio.User{Name: "Ana"}
	assets := []marketfolio.UserAssetsSummary{{
		Name:                 "Bitcoin",
		Symbol:               "BTC",
		TotalAssetAmount:     0.5,
		AveragePurchasePrice: 40000,
		TotalInvestedAmount:  20000,
		Total:                25000,
		BalancePercentage:    25,
		WalletPercentage:     80,
	}}
	got := PortfolioMarkdown(u, assets, View{Currency: marketfolio.USD})
	if !strings.Contains(got, "| Bitcoin (BTC) | 0.5000 |") {
		t.Errorf("holding row missing:\n%s", got)
	}
	if !strings.Contains(got, "+25.00%") {
		t.Errorf("balance percentage missing:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	txs := []marketfolio.Transaction{{
		Concept: "Deposit",
		Amount:  500,
		Date:    time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}}
	got := TransactionsMarkdown(txs, View{Currency: marketfolio.USD})
	if !strings.Contains(got, "| 2025-03-14 09:30 | Deposit | - |") {
		t.Errorf("transaction row missing:\n%s", got)
	}

	if empty := TransactionsMarkdown(nil, View{Currency: marketfolio.USD}); !strings.Contains(empty, "No transactions.") {
		t.Errorf("empty report = %q", empty)
	}
}

func TestWatchlistMarkdown(t *testing.T) {
	entries := []marketfolio.Watchlist{
		{AssetID: "bitcoin", TypeAsset: marketfolio.AssetTypeCrypto},
		{AssetID: "unknown-coin", TypeAsset: marketfolio.AssetTypeCrypto},
	}
	lookup := map[string]marketfolio.AssetMarket{
		"bitcoin": {Name: "Bitcoin", Symbol: "BTC", Price: 500, ChangePercentage: 1},
	}
	got := WatchlistMarkdown(entries, lookup, View{Currency: marketfolio.USD})
	if !strings.Contains(got, "| Bitcoin (BTC) | Crypto | $500,00 | +1.00% |") {
		t.Errorf("resolved row missing:\n%s", got)
	}
	if !strings.Contains(got, "| unknown-coin | Crypto | - | - |") {
		t.Errorf("unresolved row missing:\n%s", got)
	}
}

// A hidden report must not reveal whether an unresolved cell is empty.
func TestWatchlistMarkdownMaskedUnresolvedRow(t *testing.T) {
	entries := []marketfolio.Watchlist{
		{AssetID: "unknown-coin", TypeAsset: marketfolio.AssetTypeCrypto},
	}
	got := WatchlistMarkdown(entries, nil, View{Currency: marketfolio.USD, Masked: true})
	if !strings.Contains(got, "| unknown-coin | Crypto | **** | - |") {
		t.Errorf("unresolved masked row should carry the placeholder:\n%s", got)
	}
}

// The mask width follows the display currency, so the same figure masks
// identically whether it is rendered as a price, a large number, an
// abbreviation or an exact cash amount.
func TestMaskWidthFollowsDisplayCurrency(t *testing.T) {
	v := View{Currency: marketfolio.JPY, Masked: true}
	r := newRenderer(v)

	// 1000 USD converts to 150500 JPY: 8 digits in "150500.00".
	want := marketfolio.Mask(marketfolio.Convert(1000, marketfolio.JPY))
	if want != "********" {
		t.Fatalf("Mask(converted) = %q, want 8 stars", want)
	}
	for name, got := range map[string]string{
		"price": r.price(1000),
		"large": r.large(1000),
		"abbr":  r.abbr(1000),
		"cash":  r.cash(1000),
	} {
		if got != want {
			t.Errorf("%s mask = %q, want %q", name, got, want)
		}
	}
}

func TestChartMarkdown(t *testing.T) {
	day := func(d int, p float64) marketfolio.ChartPoint {
		return marketfolio.ChartPoint{Time: time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC), Price: p}
	}
	points := []marketfolio.ChartPoint{day(1, 100), day(2, 150), day(3, 120), day(4, 200)}
	got := ChartMarkdown("Bitcoin", points, View{Currency: marketfolio.USD})

	if !strings.Contains(got, "| Low | $100,00 |") || !strings.Contains(got, "| High | $200,00 |") {
		t.Errorf("range rows missing:\n%s", got)
	}
	if !strings.Contains(got, "| From | 2025-06-01 at $100,00 |") {
		t.Errorf("from row missing:\n%s", got)
	}

	// One glyph per sample, flat series does not divide by zero.
	flat := ChartMarkdown("X", []marketfolio.ChartPoint{day(1, 5), day(2, 5)}, View{Currency: marketfolio.USD})
	if !strings.Contains(flat, "▁▁") {
		t.Errorf("flat sparkline missing:\n%s", flat)
	}
}
