package renderer

import "marketfolio"

// WatchlistMarkdown renders the followed assets, joined with their live
// market rows when available in lookup.
func WatchlistMarkdown(entries []marketfolio.Watchlist, lookup map[string]marketfolio.AssetMarket, v View) string {
	r := newRenderer(v)
	r.Printf("# Watchlist\n\n")
	if len(entries) == 0 {
		r.Printf("Nothing followed yet.\n")
		return r.String()
	}
	r.Printf("| Asset | Type | Price | Change |\n")
	r.Printf("|:---|:---|---:|---:|\n")
	for _, e := range entries {
		if a, ok := lookup[e.AssetID]; ok {
			r.Printf("| %s (%s) | %s | %s | %s |\n",
				a.Name, a.Symbol, e.TypeAsset, r.price(a.Price), a.ChangePercentage.SignedString())
			continue
		}
		price := "-"
		if r.Masked {
			price = marketfolio.HiddenPlaceholder
		}
		r.Printf("| %s | %s | %s | - |\n", e.AssetID, e.TypeAsset, price)
	}
	return r.String()
}
