package marketfolio

// Watchlist marks one asset as followed by one user. Existence is binary:
// the backend enforces set semantics, the client never orders entries.
type Watchlist struct {
	UserID    int    `json:"userId"`
	AssetID   string `json:"assetId"`
	TypeAsset string `json:"typeAsset"`
}

// Asset type tags accepted by the watchlist and assets routes.
const (
	AssetTypeCrypto = "Crypto"
	AssetTypeStock  = "Stock"
)
