package renderer

import "marketfolio"

// TransactionsMarkdown renders the wallet movement log, in the order served
// by the backend.
func TransactionsMarkdown(txs []marketfolio.Transaction, v View) string {
	r := newRenderer(v)
	r.Printf("# Transactions\n\n")
	if len(txs) == 0 {
		r.Printf("No transactions.\n")
		return r.String()
	}
	r.Printf("| Date | Concept | Asset | Quantity | Amount | Charge |\n")
	r.Printf("|:---|:---|:---|---:|---:|---:|\n")
	for _, t := range txs {
		asset := t.AssetID
		if asset == "" {
			asset = "-"
		}
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			t.Date.Format("2006-01-02 15:04"),
			t.Concept,
			asset,
			r.qty(t.AssetAmount),
			r.cash(t.Amount),
			r.cash(t.Charge))
	}
	return r.String()
}
