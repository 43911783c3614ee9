package marketfolio

import "time"

// AssetMarket is a slim market listing used by the trending, gainers, losers
// and most-actives views for both asset classes.
type AssetMarket struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Symbol           string    `json:"symbol"`
	Image            string    `json:"image"`
	Price            float64   `json:"price"`
	ChangePercentage Percent   `json:"changePercentage"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// CryptoIndex is a market-wide indicator (total market cap, fear & greed,
// CMC100). Value semantics depend on the index; Sentiment is only set for
// sentiment-style indices.
type CryptoIndex struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Value            float64   `json:"value"`
	ChangePercentage Percent   `json:"changePercentage,omitempty"`
	Sentiment        string    `json:"sentiment,omitempty"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// ChartPoint is one sample of an asset price series from the aggregator
// chart routes.
type ChartPoint struct {
	Time  time.Time
	Price float64
}
