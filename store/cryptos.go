package store

import (
	"context"
	"log"

	"marketfolio"
	"marketfolio/api"
)

// CryptosStore caches the crypto listings: the sorted collection, the last
// inspected coin, and its price history.
type CryptosStore struct {
	api *api.Client

	all    snapshot[[]marketfolio.Crypto]
	detail snapshot[marketfolio.Crypto]
	chart  snapshot[[]marketfolio.ChartPoint]
}

// NewCryptos returns an empty crypto cache over c.
func NewCryptos(c *api.Client) *CryptosStore { return &CryptosStore{api: c} }

// Cryptos returns the cached collection, possibly stale or empty.
func (s *CryptosStore) Cryptos() []marketfolio.Crypto { return s.all.get() }

// Crypto returns the last fetched coin.
func (s *CryptosStore) Crypto() marketfolio.Crypto { return s.detail.get() }

// Chart returns the last fetched price history.
func (s *CryptosStore) Chart() []marketfolio.ChartPoint { return s.chart.get() }

// GetCryptos refreshes the collection sorted by sortBy in the given order.
func (s *CryptosStore) GetCryptos(ctx context.Context, sortBy, order int) bool {
	seq := s.all.begin()
	list, err := s.api.Cryptos(ctx, sortBy, order)
	if err != nil {
		log.Printf("cannot fetch cryptos: %v", err)
		return false
	}
	s.all.commit(seq, list)
	return true
}

// GetCrypto refreshes the inspected coin.
func (s *CryptosStore) GetCrypto(ctx context.Context, id string) bool {
	seq := s.detail.begin()
	coin, err := s.api.Crypto(ctx, id)
	if err != nil {
		log.Printf("cannot fetch crypto %s: %v", id, err)
		return false
	}
	s.detail.commit(seq, coin)
	return true
}

// GetChart refreshes the price history of id over the last days.
func (s *CryptosStore) GetChart(ctx context.Context, id string, days int) bool {
	seq := s.chart.begin()
	points, err := s.api.CryptoChart(ctx, id, days)
	if err != nil {
		log.Printf("cannot fetch crypto chart %s: %v", id, err)
		return false
	}
	s.chart.commit(seq, points)
	return true
}

// SearchCryptos hands matches straight to the caller without touching the
// cached collection, so concurrent searches never race on shared state.
func (s *CryptosStore) SearchCryptos(ctx context.Context, query string) []marketfolio.Crypto {
	list, err := s.api.SearchCryptos(ctx, query)
	if err != nil {
		log.Printf("crypto search %q failed: %v", query, err)
		return nil
	}
	return list
}
