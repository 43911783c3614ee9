package renderer

import "marketfolio"

// CryptosMarkdown renders the crypto collection as a markdown table.
func CryptosMarkdown(cryptos []marketfolio.Crypto, v View) string {
	r := newRenderer(v)
	r.Printf("# Cryptocurrencies\n\n")
	if len(cryptos) == 0 {
		r.Printf("No data cached. Run a fetch first.\n")
		return r.String()
	}
	r.Printf("| Name | Symbol | Price | 24h | 7d | Market Cap |\n")
	r.Printf("|:---|:---|---:|---:|---:|---:|\n")
	for _, c := range cryptos {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			c.Name, c.Symbol,
			r.price(c.CurrentPrice),
			c.PriceChangePercentage24h.SignedString(),
			c.PriceChangePercentage7d.SignedString(),
			r.abbr(c.MarketCap))
	}
	return r.String()
}

// CryptoMarkdown renders one coin in full.
func CryptoMarkdown(c marketfolio.Crypto, v View) string {
	r := newRenderer(v)
	r.Printf("# %s (%s)\n\n", c.Name, c.Symbol)
	r.Printf("Price: %s (%s in 24h)\n\n", r.price(c.CurrentPrice), c.PriceChangePercentage24h.SignedString())

	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Market cap | %s |\n", r.abbr(c.MarketCap))
	r.Printf("| Fully diluted valuation | %s |\n", r.abbr(c.FullyDilutedValuation))
	r.Printf("| 24h volume | %s |\n", r.abbr(c.TotalVolume))
	r.Printf("| 24h high | %s |\n", r.price(c.High24h))
	r.Printf("| 24h low | %s |\n", r.price(c.Low24h))
	r.Printf("| Circulating supply | %s |\n", r.qty(c.CirculatingSupply))
	r.Printf("| Total supply | %s |\n", r.qty(c.TotalSupply))
	r.Printf("| All-time high | %s (%s) |\n", r.price(c.AllTimeHigh), c.AllTimeHighChangePercent.SignedString())
	r.Printf("| All-time low | %s (%s) |\n", r.price(c.AllTimeLow), c.AllTimeLowChangePercent.SignedString())
	return r.String()
}

// StocksMarkdown renders the equity collection as a markdown table.
func StocksMarkdown(stocks []marketfolio.Stock, v View) string {
	r := newRenderer(v)
	r.Printf("# Stocks\n\n")
	if len(stocks) == 0 {
		r.Printf("No data cached. Run a fetch first.\n")
		return r.String()
	}
	r.Printf("| Company | Symbol | Price | Change | Market Cap | Sector |\n")
	r.Printf("|:---|:---|---:|---:|---:|:---|\n")
	for _, s := range stocks {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			s.CompanyName, s.Symbol,
			r.price(s.Price),
			s.ChangesPercentage.SignedString(),
			r.abbr(s.MarketCap),
			s.Sector)
	}
	return r.String()
}

// StockMarkdown renders one equity in full.
func StockMarkdown(s marketfolio.Stock, v View) string {
	r := newRenderer(v)
	r.Printf("# %s (%s)\n\n", s.CompanyName, s.Symbol)
	r.Printf("Price: %s (%s)\n\n", r.price(s.Price), s.ChangesPercentage.SignedString())

	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Market cap | %s |\n", r.abbr(s.MarketCap))
	r.Printf("| Sector | %s |\n", s.Sector)
	r.Printf("| Industry | %s |\n", s.Industry)
	r.Printf("| Exchange | %s (%s) |\n", s.Exchange, s.ExchangeShortName)
	r.Printf("| Country | %s |\n", s.Country)
	r.Printf("| CEO | %s |\n", s.CEO)
	r.Printf("| Last dividend | %s |\n", r.price(s.LastDividend))
	r.Printf("| Average volume | %s |\n", r.qty(s.AvgVolume))
	if s.Description != "" {
		r.Printf("\n%s\n", s.Description)
	}
	return r.String()
}
