package marketfolio

import "time"

// Crypto is the backend's snapshot of one cryptocurrency. All monetary fields
// are USD; conversion happens at display time only. The mixed snake/camel tag
// casing mirrors the backend payload, which passes some aggregator fields
// through verbatim.
type Crypto struct {
	ID                         string    `json:"id"`
	Name                       string    `json:"name"`
	Symbol                     string    `json:"symbol"`
	Image                      string    `json:"image"`
	CurrentPrice               float64   `json:"current_price"`
	MarketCap                  float64   `json:"market_cap"`
	FullyDilutedValuation      float64   `json:"fullyDilutedValuation"`
	TotalVolume                float64   `json:"total_volume"`
	High24h                    float64   `json:"high24h"`
	Low24h                     float64   `json:"low24h"`
	PriceChange24h             float64   `json:"priceChange24h"`
	PriceChangePercentage24h   Percent   `json:"price_change_percentage_24h"`
	PriceChangePercentage1h    Percent   `json:"price_change_percentage_1h_in_currency"`
	PriceChangePercentage7d    Percent   `json:"price_change_percentage_7d_in_currency"`
	MarketCapChange24h         float64   `json:"marketCapChange24h"`
	MarketCapChangePercent24h  Percent   `json:"marketCapChangePercentage24h"`
	CirculatingSupply          float64   `json:"circulating_supply"`
	TotalSupply                float64   `json:"totalSupply"`
	MaxSupply                  float64   `json:"maxSupply"`
	AllTimeHigh                float64   `json:"ath"`
	AllTimeHighChangePercent   Percent   `json:"athChangePercentage"`
	AllTimeHighDate            time.Time `json:"athDate"`
	AllTimeLow                 float64   `json:"atl"`
	AllTimeLowChangePercent    Percent   `json:"atlChangePercentage"`
	AllTimeLowDate             time.Time `json:"atlDate"`
	Sparkline7d                string    `json:"sparkline_in_7d"`
	LastUpdated                time.Time `json:"lastUpdated"`
}
