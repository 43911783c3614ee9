package store

import (
	"context"
	"log"

	"marketfolio"
	"marketfolio/api"
)

// MarketsStore caches the cross-asset market aggregates: index gauges,
// trending lists, gainers, losers and most-active equities. Refresh actions
// ask the backend to recompute an aggregate from its upstream feeds; like
// every write they do not touch the local snapshot, the caller re-fetches.
type MarketsStore struct {
	api *api.Client

	indices         snapshot[[]marketfolio.CryptoIndex]
	cryptosTrending snapshot[[]marketfolio.AssetMarket]
	stocksTrending  snapshot[[]marketfolio.AssetMarket]
	gainers         snapshot[[]marketfolio.AssetMarket]
	losers          snapshot[[]marketfolio.AssetMarket]
	mostActives     snapshot[[]marketfolio.AssetMarket]
}

// NewMarkets returns an empty market cache over c.
func NewMarkets(c *api.Client) *MarketsStore { return &MarketsStore{api: c} }

// Indices returns the cached index gauges.
func (s *MarketsStore) Indices() []marketfolio.CryptoIndex { return s.indices.get() }

// CryptosTrending returns the cached trending coins.
func (s *MarketsStore) CryptosTrending() []marketfolio.AssetMarket { return s.cryptosTrending.get() }

// StocksTrending returns the cached trending equities.
func (s *MarketsStore) StocksTrending() []marketfolio.AssetMarket { return s.stocksTrending.get() }

// Gainers returns the cached top gainers.
func (s *MarketsStore) Gainers() []marketfolio.AssetMarket { return s.gainers.get() }

// Losers returns the cached top losers.
func (s *MarketsStore) Losers() []marketfolio.AssetMarket { return s.losers.get() }

// MostActives returns the cached most-active equities.
func (s *MarketsStore) MostActives() []marketfolio.AssetMarket { return s.mostActives.get() }

// GetIndices refreshes the index gauges.
func (s *MarketsStore) GetIndices(ctx context.Context) bool {
	seq := s.indices.begin()
	list, err := s.api.CryptoIndices(ctx)
	if err != nil {
		log.Printf("cannot fetch market indices: %v", err)
		return false
	}
	s.indices.commit(seq, list)
	return true
}

// GetCryptosTrending refreshes the trending coins.
func (s *MarketsStore) GetCryptosTrending(ctx context.Context) bool {
	seq := s.cryptosTrending.begin()
	list, err := s.api.CryptosTrending(ctx)
	if err != nil {
		log.Printf("cannot fetch trending cryptos: %v", err)
		return false
	}
	s.cryptosTrending.commit(seq, list)
	return true
}

// GetStocksTrending refreshes the trending equities.
func (s *MarketsStore) GetStocksTrending(ctx context.Context) bool {
	seq := s.stocksTrending.begin()
	list, err := s.api.MarketStocksTrending(ctx)
	if err != nil {
		log.Printf("cannot fetch trending stocks: %v", err)
		return false
	}
	s.stocksTrending.commit(seq, list)
	return true
}

// GetGainers refreshes the top gainers.
func (s *MarketsStore) GetGainers(ctx context.Context) bool {
	seq := s.gainers.begin()
	list, err := s.api.StocksGainers(ctx)
	if err != nil {
		log.Printf("cannot fetch gainers: %v", err)
		return false
	}
	s.gainers.commit(seq, list)
	return true
}

// GetLosers refreshes the top losers.
func (s *MarketsStore) GetLosers(ctx context.Context) bool {
	seq := s.losers.begin()
	list, err := s.api.StocksLosers(ctx)
	if err != nil {
		log.Printf("cannot fetch losers: %v", err)
		return false
	}
	s.losers.commit(seq, list)
	return true
}

// GetMostActives refreshes the most-active equities.
func (s *MarketsStore) GetMostActives(ctx context.Context) bool {
	seq := s.mostActives.begin()
	list, err := s.api.StocksMostActives(ctx)
	if err != nil {
		log.Printf("cannot fetch most actives: %v", err)
		return false
	}
	s.mostActives.commit(seq, list)
	return true
}

func (s *MarketsStore) refresh(name string, err error) WriteResult {
	if err != nil {
		log.Printf("cannot refresh %s: %v", name, err)
		return rejected()
	}
	return applied()
}

// RefreshTotalMarketCap asks the backend to recompute the total market cap.
func (s *MarketsStore) RefreshTotalMarketCap(ctx context.Context) WriteResult {
	return s.refresh("total market cap", s.api.RefreshTotalMarketCap(ctx))
}

// RefreshFearGreedIndex asks the backend to recompute the fear & greed index.
func (s *MarketsStore) RefreshFearGreedIndex(ctx context.Context) WriteResult {
	return s.refresh("fear & greed index", s.api.RefreshFearGreedIndex(ctx))
}

// RefreshCMC100Index asks the backend to recompute the CMC100 index.
func (s *MarketsStore) RefreshCMC100Index(ctx context.Context) WriteResult {
	return s.refresh("CMC100 index", s.api.RefreshCMC100Index(ctx))
}

// RefreshCryptosTrending asks the backend to recompute the trending coins.
func (s *MarketsStore) RefreshCryptosTrending(ctx context.Context) WriteResult {
	return s.refresh("trending cryptos", s.api.RefreshCryptosTrending(ctx))
}

// RefreshStocksTrending asks the backend to recompute the trending equities.
func (s *MarketsStore) RefreshStocksTrending(ctx context.Context) WriteResult {
	return s.refresh("trending stocks", s.api.RefreshStocksTrending(ctx))
}

// RefreshStocksGainers asks the backend to recompute the top gainers.
func (s *MarketsStore) RefreshStocksGainers(ctx context.Context) WriteResult {
	return s.refresh("gainers", s.api.RefreshStocksGainers(ctx))
}

// RefreshStocksLosers asks the backend to recompute the top losers.
func (s *MarketsStore) RefreshStocksLosers(ctx context.Context) WriteResult {
	return s.refresh("losers", s.api.RefreshStocksLosers(ctx))
}

// RefreshStocksMostActives asks the backend to recompute the most actives.
func (s *MarketsStore) RefreshStocksMostActives(ctx context.Context) WriteResult {
	return s.refresh("most actives", s.api.RefreshStocksMostActives(ctx))
}
