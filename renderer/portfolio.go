package renderer

import (
	"math"

	"github.com/Rhymond/go-money"

	"marketfolio"
)

// cash renders an exact wallet figure in the view currency. Unlike market
// prices, wallet cash is money the user owns, so it goes through the ISO
// money type for minor-unit rounding instead of the tiered display format.
func (r *mdRenderer) cash(usd float64) string {
	if r.Masked {
		return r.mask(usd)
	}
	converted := marketfolio.Convert(usd, r.Currency)
	if !r.Currency.IsISO() {
		return r.price(usd)
	}
	m := money.New(int64(math.Round(converted*100)), string(r.Currency))
	return m.Display()
}

// PortfolioMarkdown renders the user's wallet and holdings.
func PortfolioMarkdown(u marketfolio.User, assets []marketfolio.UserAssetsSummary, v View) string {
	r := newRenderer(v)
	r.Printf("# Portfolio of %s\n\n", u.Name)

	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Cash | %s |\n", r.cash(u.Cash))
	r.Printf("| Invested | %s |\n", r.cash(u.Wallet))
	r.Printf("| Profit | %s |\n", r.cash(u.Profit))
	r.Printf("\n")

	if len(assets) == 0 {
		r.Printf("No holdings.\n")
		return r.String()
	}
	r.Printf("## Holdings\n\n")
	r.Printf("| Asset | Amount | Avg Price | Invested | Value | P/L | Wallet %% |\n")
	r.Printf("|:---|---:|---:|---:|---:|---:|---:|\n")
	for _, a := range assets {
		r.Printf("| %s (%s) | %s | %s | %s | %s | %s | %s |\n",
			a.Name, a.Symbol,
			r.qty(a.TotalAssetAmount),
			r.price(a.AveragePurchasePrice),
			r.cash(a.TotalInvestedAmount),
			r.cash(a.Total),
			a.BalancePercentage.SignedString(),
			a.WalletPercentage.String())
	}
	return r.String()
}
