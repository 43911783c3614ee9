package api

import (
	"context"
	"net/url"
	"strconv"

	"marketfolio"
)

// Sort keys and orders understood by the asset listing routes. The backend
// takes them as plain integers.
const (
	SortByRank      = 0
	SortByName      = 1
	SortByPrice     = 2
	SortByChange24h = 3
	SortByMarketCap = 4

	OrderAsc  = 0
	OrderDesc = 1
)

func sortQuery(sortBy, order int) url.Values {
	return url.Values{
		"SortBy": {strconv.Itoa(sortBy)},
		"Order":  {strconv.Itoa(order)},
	}
}

// Cryptos lists all cryptocurrencies, sorted server-side.
func (c *Client) Cryptos(ctx context.Context, sortBy, order int) ([]marketfolio.Crypto, error) {
	var out []marketfolio.Crypto
	err := c.getJSON(ctx, "/Cryptos", sortQuery(sortBy, order), false, &out)
	return out, err
}

// Crypto fetches one cryptocurrency by id.
func (c *Client) Crypto(ctx context.Context, id string) (marketfolio.Crypto, error) {
	var out marketfolio.Crypto
	err := c.getJSON(ctx, "/Cryptos/"+url.PathEscape(id), nil, false, &out)
	return out, err
}

// SearchCryptos free-text searches cryptocurrencies. Results go straight to
// the caller, never through a shared cache.
func (c *Client) SearchCryptos(ctx context.Context, query string) ([]marketfolio.Crypto, error) {
	var out []marketfolio.Crypto
	err := c.getJSON(ctx, "/Cryptos/search-crypto", url.Values{"query": {query}}, false, &out)
	return out, err
}

// Stocks lists all stocks, sorted server-side.
func (c *Client) Stocks(ctx context.Context, sortBy, order int) ([]marketfolio.Stock, error) {
	var out []marketfolio.Stock
	err := c.getJSON(ctx, "/Stocks", sortQuery(sortBy, order), false, &out)
	return out, err
}

// Stock fetches one stock by id.
func (c *Client) Stock(ctx context.Context, id string) (marketfolio.Stock, error) {
	var out marketfolio.Stock
	err := c.getJSON(ctx, "/Stocks/"+url.PathEscape(id), nil, false, &out)
	return out, err
}

// SearchStocks free-text searches stocks.
func (c *Client) SearchStocks(ctx context.Context, query string) ([]marketfolio.Stock, error) {
	var out []marketfolio.Stock
	err := c.getJSON(ctx, "/Stocks/search-stock", url.Values{"query": {query}}, false, &out)
	return out, err
}

// StocksTrending reads the aggregator's trending stocks list.
func (c *Client) StocksTrending(ctx context.Context) ([]marketfolio.AssetMarket, error) {
	var out []marketfolio.AssetMarket
	err := c.getJSON(ctx, "/StockApi/stocks-trending", nil, false, &out)
	return out, err
}
