package marketfolio

import "time"

// Transaction is one append-only wallet movement created by the backend in
// response to a deposit, withdrawal, buy or sell. The client never mutates a
// transaction, it only observes new ones through a re-fetch.
type Transaction struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	AssetID       string    `json:"assetId"`
	Concept       string    `json:"concept"`
	Amount        float64   `json:"amount"`
	PurchasePrice float64   `json:"purchasePrice"`
	AssetAmount   float64   `json:"assetAmount"`
	Date          time.Time `json:"date"`
	Charge        float64   `json:"charge"`
	PaymentMethod string    `json:"paymentMethod"`
	TypeOfAsset   string    `json:"typeOfAsset"`
}

// UserAssetsSummary is the server-computed aggregate for one held asset. The
// client treats it as read-only: none of these figures are recomputed locally.
type UserAssetsSummary struct {
	AssetID              string  `json:"assetId"`
	Name                 string  `json:"name"`
	TotalInvestedAmount  float64 `json:"totalInvestedAmount"`
	TotalAssetAmount     float64 `json:"totalAssetAmount"`
	AveragePurchasePrice float64 `json:"averagePurchasePrice"`
	Balance              float64 `json:"balance"`
	BalancePercentage    Percent `json:"balancePercentage"`
	Total                float64 `json:"total"`
	WalletPercentage     Percent `json:"walletPercentage"`
	TypeOfAsset          string  `json:"typeOfAsset"`
	Symbol               string  `json:"symbol"`
	Image                string  `json:"image"`
	Price                float64 `json:"price"`
	ChangesPercentage24h Percent `json:"changesPercentage24h"`
}
