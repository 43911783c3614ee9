package store

import (
	"context"
	"log"

	"marketfolio"
	"marketfolio/api"
)

// StocksStore caches the equity listings, mirroring CryptosStore.
type StocksStore struct {
	api *api.Client

	all      snapshot[[]marketfolio.Stock]
	detail   snapshot[marketfolio.Stock]
	chart    snapshot[[]marketfolio.ChartPoint]
	trending snapshot[[]marketfolio.AssetMarket]
}

// NewStocks returns an empty stock cache over c.
func NewStocks(c *api.Client) *StocksStore { return &StocksStore{api: c} }

// Stocks returns the cached collection, possibly stale or empty.
func (s *StocksStore) Stocks() []marketfolio.Stock { return s.all.get() }

// Stock returns the last fetched equity.
func (s *StocksStore) Stock() marketfolio.Stock { return s.detail.get() }

// Chart returns the last fetched price history.
func (s *StocksStore) Chart() []marketfolio.ChartPoint { return s.chart.get() }

// Trending returns the cached trending equities.
func (s *StocksStore) Trending() []marketfolio.AssetMarket { return s.trending.get() }

// GetStocks refreshes the collection sorted by sortBy in the given order.
func (s *StocksStore) GetStocks(ctx context.Context, sortBy, order int) bool {
	seq := s.all.begin()
	list, err := s.api.Stocks(ctx, sortBy, order)
	if err != nil {
		log.Printf("cannot fetch stocks: %v", err)
		return false
	}
	s.all.commit(seq, list)
	return true
}

// GetStock refreshes the inspected equity.
func (s *StocksStore) GetStock(ctx context.Context, id string) bool {
	seq := s.detail.begin()
	stock, err := s.api.Stock(ctx, id)
	if err != nil {
		log.Printf("cannot fetch stock %s: %v", id, err)
		return false
	}
	s.detail.commit(seq, stock)
	return true
}

// GetChart refreshes the price history of id over the last days.
func (s *StocksStore) GetChart(ctx context.Context, id string, days int) bool {
	seq := s.chart.begin()
	points, err := s.api.StockChart(ctx, id, days)
	if err != nil {
		log.Printf("cannot fetch stock chart %s: %v", id, err)
		return false
	}
	s.chart.commit(seq, points)
	return true
}

// GetTrending refreshes the trending equities.
func (s *StocksStore) GetTrending(ctx context.Context) bool {
	seq := s.trending.begin()
	list, err := s.api.StocksTrending(ctx)
	if err != nil {
		log.Printf("cannot fetch trending stocks: %v", err)
		return false
	}
	s.trending.commit(seq, list)
	return true
}

// SearchStocks hands matches straight to the caller without touching the
// cached collection.
func (s *StocksStore) SearchStocks(ctx context.Context, query string) []marketfolio.Stock {
	list, err := s.api.SearchStocks(ctx, query)
	if err != nil {
		log.Printf("stock search %q failed: %v", query, err)
		return nil
	}
	return list
}
