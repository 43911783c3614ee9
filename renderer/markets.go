package renderer

import (
	"io"

	"marketfolio"
)

// MarketReport is the cached state behind the market overview page. Empty
// sections are dropped from the rendered report.
type MarketReport struct {
	Indices         []marketfolio.CryptoIndex
	CryptosTrending []marketfolio.AssetMarket
	StocksTrending  []marketfolio.AssetMarket
	Gainers         []marketfolio.AssetMarket
	Losers          []marketfolio.AssetMarket
	MostActives     []marketfolio.AssetMarket
}

// MarketMarkdown renders the market overview.
func MarketMarkdown(m MarketReport, v View) string {
	r := newRenderer(v)
	r.Printf("# Market Overview\n\n")

	ConditionalBlock(r, func(w io.Writer) bool {
		sub := newRenderer(v)
		sub.renderIndices(m.Indices)
		io.WriteString(w, sub.String())
		return len(m.Indices) > 0
	})
	r.renderListing("Trending Cryptos", m.CryptosTrending)
	r.renderListing("Trending Stocks", m.StocksTrending)
	r.renderListing("Top Gainers", m.Gainers)
	r.renderListing("Top Losers", m.Losers)
	r.renderListing("Most Active", m.MostActives)

	return r.String()
}

func (r *mdRenderer) renderIndices(indices []marketfolio.CryptoIndex) {
	r.Printf("## Indices\n\n")
	r.Printf("| Index | Value | Change | Sentiment |\n")
	r.Printf("|:---|---:|---:|:---|\n")
	for _, ix := range indices {
		r.Printf("| %s | %s | %s | %s |\n",
			ix.Name, r.abbr(ix.Value), ix.ChangePercentage.SignedString(), ix.Sentiment)
	}
	r.Printf("\n")
}

// renderListing prints one titled asset table, or nothing when the section
// is empty.
func (r *mdRenderer) renderListing(title string, assets []marketfolio.AssetMarket) {
	ConditionalBlock(r, func(w io.Writer) bool {
		sub := newRenderer(r.View)
		sub.Printf("## %s\n\n", title)
		sub.Printf("| Name | Symbol | Price | Change |\n")
		sub.Printf("|:---|:---|---:|---:|\n")
		for _, a := range assets {
			sub.Printf("| %s | %s | %s | %s |\n",
				a.Name, a.Symbol, sub.price(a.Price), a.ChangePercentage.SignedString())
		}
		sub.Printf("\n")
		io.WriteString(w, sub.String())
		return len(assets) > 0
	})
}
