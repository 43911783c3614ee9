package marketfolio

import "time"

// Stock is the backend's snapshot of one listed company. Prices are USD.
type Stock struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	Symbol            string    `json:"symbol"`
	Price             float64   `json:"price"`
	MarketCap         float64   `json:"mktCap"`
	Sector            string    `json:"sector"`
	Industry          string    `json:"industry"`
	LastDividend      float64   `json:"lastDiv"`
	AvgVolume         float64   `json:"volAvg"`
	Exchange          string    `json:"exchange"`
	ExchangeShortName string    `json:"exchangeShortName"`
	Country           string    `json:"country"`
	Changes           float64   `json:"changes"`
	ChangesPercentage Percent   `json:"changesPercentage"`
	Currency          string    `json:"currency"`
	ISIN              string    `json:"isin"`
	Website           string    `json:"website"`
	Description       string    `json:"description"`
	CEO               string    `json:"ceo"`
	Image             string    `json:"image"`
	LastUpdated       time.Time `json:"lastUpdated"`
}
