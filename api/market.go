package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"marketfolio"
)

// read routes: cached market snapshots computed by the backend.

// CryptoIndices reads the market-wide indicators (total market cap,
// fear & greed, CMC100).
func (c *Client) CryptoIndices(ctx context.Context) ([]marketfolio.CryptoIndex, error) {
	var out []marketfolio.CryptoIndex
	err := c.getJSON(ctx, "/Market/crypto-indices", nil, false, &out)
	return out, err
}

// CryptosTrending reads the trending cryptocurrencies list.
func (c *Client) CryptosTrending(ctx context.Context) ([]marketfolio.AssetMarket, error) {
	var out []marketfolio.AssetMarket
	err := c.getJSON(ctx, "/Market/cryptos-trending", nil, false, &out)
	return out, err
}

// MarketStocksTrending reads the trending stocks list from the market cache.
func (c *Client) MarketStocksTrending(ctx context.Context) ([]marketfolio.AssetMarket, error) {
	var out []marketfolio.AssetMarket
	err := c.getJSON(ctx, "/Market/stocks-trending", nil, false, &out)
	return out, err
}

// StocksGainers reads the day's best performing stocks.
func (c *Client) StocksGainers(ctx context.Context) ([]marketfolio.AssetMarket, error) {
	var out []marketfolio.AssetMarket
	err := c.getJSON(ctx, "/Market/stocks-gainers", nil, false, &out)
	return out, err
}

// StocksLosers reads the day's worst performing stocks.
func (c *Client) StocksLosers(ctx context.Context) ([]marketfolio.AssetMarket, error) {
	var out []marketfolio.AssetMarket
	err := c.getJSON(ctx, "/Market/stocks-losers", nil, false, &out)
	return out, err
}

// StocksMostActives reads the most traded stocks.
func (c *Client) StocksMostActives(ctx context.Context) ([]marketfolio.AssetMarket, error) {
	var out []marketfolio.AssetMarket
	err := c.getJSON(ctx, "/Market/stocks-most-actives", nil, false, &out)
	return out, err
}

// refresh routes: each asks the backend to pull fresh data from its upstream
// aggregator into its own database. They return no payload worth decoding,
// only success or failure.

func (c *Client) refresh(ctx context.Context, path string) error {
	resp, err := c.send(ctx, http.MethodGet, path, nil, nil, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh %s failed: %s", path, resp.Status)
	}
	return nil
}

func (c *Client) RefreshTotalMarketCap(ctx context.Context) error {
	return c.refresh(ctx, "/MarketApi/total-market-cap")
}

func (c *Client) RefreshFearGreedIndex(ctx context.Context) error {
	return c.refresh(ctx, "/MarketApi/fear-greed-index")
}

func (c *Client) RefreshCMC100Index(ctx context.Context) error {
	return c.refresh(ctx, "/MarketApi/CMC100-index")
}

func (c *Client) RefreshCryptosTrending(ctx context.Context) error {
	return c.refresh(ctx, "/MarketApi/cryptos-trending")
}

func (c *Client) RefreshStocksTrending(ctx context.Context) error {
	return c.refresh(ctx, "/MarketApi/stocks-trending")
}

func (c *Client) RefreshStocksGainers(ctx context.Context) error {
	return c.refresh(ctx, "/MarketApi/stocks-gainers")
}

func (c *Client) RefreshStocksLosers(ctx context.Context) error {
	return c.refresh(ctx, "/MarketApi/stocks-losers")
}

func (c *Client) RefreshStocksMostActives(ctx context.Context) error {
	return c.refresh(ctx, "/MarketApi/stocks-most-actives")
}
