package store

import (
	"context"
	"log"

	"marketfolio"
	"marketfolio/api"
)

// TransactionsStore caches the user's transaction history and per-asset
// holdings, and carries the money-moving write actions. Writes never patch
// the local snapshot; a trade is only visible after the caller re-fetches.
type TransactionsStore struct {
	api *api.Client

	history snapshot[[]marketfolio.Transaction]
	assets  snapshot[[]marketfolio.UserAssetsSummary]
}

// NewTransactions returns an empty transaction cache over c.
func NewTransactions(c *api.Client) *TransactionsStore { return &TransactionsStore{api: c} }

// Transactions returns the cached history, possibly stale or empty.
func (s *TransactionsStore) Transactions() []marketfolio.Transaction { return s.history.get() }

// Assets returns the cached holdings summary.
func (s *TransactionsStore) Assets() []marketfolio.UserAssetsSummary { return s.assets.get() }

// GetTransactions refreshes the history of userID.
func (s *TransactionsStore) GetTransactions(ctx context.Context, userID int) bool {
	seq := s.history.begin()
	list, err := s.api.Transactions(ctx, userID)
	if err != nil {
		log.Printf("cannot fetch transactions: %v", err)
		return false
	}
	s.history.commit(seq, list)
	return true
}

// GetAssets refreshes the holdings summary of userID, optionally narrowed to
// one asset type or one asset id.
func (s *TransactionsStore) GetAssets(ctx context.Context, userID int, typeAsset, assetID string) bool {
	seq := s.assets.begin()
	list, err := s.api.UserAssets(ctx, userID, typeAsset, assetID)
	if err != nil {
		log.Printf("cannot fetch holdings: %v", err)
		return false
	}
	s.assets.commit(seq, list)
	return true
}

func (s *TransactionsStore) write(name string, err error) WriteResult {
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return rejected()
	}
	return applied()
}

// MakeDeposit adds cash to the wallet of userID.
func (s *TransactionsStore) MakeDeposit(ctx context.Context, userID int, amount float64, paymentMethod int) WriteResult {
	return s.write("deposit", s.api.Deposit(ctx, userID, amount, paymentMethod))
}

// MakeWithdrawal removes cash from the wallet of userID.
func (s *TransactionsStore) MakeWithdrawal(ctx context.Context, userID int, amount float64) WriteResult {
	return s.write("withdrawal", s.api.Withdraw(ctx, userID, amount))
}

// BuyCrypto buys assetID for userID. Either amount (cash spent) or
// assetAmount (units bought) may be nil, the backend derives the other.
func (s *TransactionsStore) BuyCrypto(ctx context.Context, userID int, assetID string, amount, assetAmount *float64) WriteResult {
	return s.write("crypto buy", s.api.BuyCrypto(ctx, userID, assetID, amount, assetAmount))
}

// SellCrypto sells assetID for userID.
func (s *TransactionsStore) SellCrypto(ctx context.Context, userID int, assetID string, amount, assetAmount *float64) WriteResult {
	return s.write("crypto sell", s.api.SellCrypto(ctx, userID, assetID, amount, assetAmount))
}

// BuyStock buys assetID for userID.
func (s *TransactionsStore) BuyStock(ctx context.Context, userID int, assetID string, amount, assetAmount *float64) WriteResult {
	return s.write("stock buy", s.api.BuyStock(ctx, userID, assetID, amount, assetAmount))
}

// SellStock sells assetID for userID.
func (s *TransactionsStore) SellStock(ctx context.Context, userID int, assetID string, amount, assetAmount *float64) WriteResult {
	return s.write("stock sell", s.api.SellStock(ctx, userID, assetID, amount, assetAmount))
}
