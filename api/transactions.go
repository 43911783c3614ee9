package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"marketfolio"
)

// Transactions lists the user's wallet movements, newest first as served.
func (c *Client) Transactions(ctx context.Context, userID int) ([]marketfolio.Transaction, error) {
	var out []marketfolio.Transaction
	err := c.getJSON(ctx, fmt.Sprintf("/Transactions/%d", userID), nil, true, &out)
	return out, err
}

// UserAssets lists the server-computed per-asset aggregates for the user,
// optionally narrowed to one asset type or one asset.
func (c *Client) UserAssets(ctx context.Context, userID int, typeAsset, assetID string) ([]marketfolio.UserAssetsSummary, error) {
	q := url.Values{}
	if typeAsset != "" {
		q.Set("typeAsset", typeAsset)
	}
	if assetID != "" {
		q.Set("assetId", assetID)
	}
	var out []marketfolio.UserAssetsSummary
	err := c.getJSON(ctx, fmt.Sprintf("/Transactions/%d/assets", userID), q, true, &out)
	return out, err
}

// Deposit credits cash to the wallet through the given payment method.
func (c *Client) Deposit(ctx context.Context, userID int, amount float64, paymentMethod int) error {
	body := struct {
		UserID        int     `json:"userId"`
		Amount        float64 `json:"amount"`
		PaymentMethod int     `json:"paymentMethod"`
	}{userID, amount, paymentMethod}
	return c.ok(ctx, http.MethodPost, "/Transactions/deposit", body)
}

// Withdraw debits cash from the wallet.
func (c *Client) Withdraw(ctx context.Context, userID int, amount float64) error {
	body := struct {
		UserID int     `json:"userId"`
		Amount float64 `json:"amount"`
	}{userID, amount}
	return c.ok(ctx, http.MethodPost, "/Transactions/withdrawal", body)
}

// trade is the shared payload of the four buy/sell routes. Either the cash
// amount or the asset quantity drives the trade; the backend fills the other
// side at the current price.
type trade struct {
	UserID      int      `json:"userId"`
	AssetID     string   `json:"assetId"`
	Amount      *float64 `json:"amount,omitempty"`
	AssetAmount *float64 `json:"assetAmount,omitempty"`
}

func (c *Client) BuyCrypto(ctx context.Context, userID int, assetID string, amount, assetAmount *float64) error {
	return c.ok(ctx, http.MethodPost, "/Transactions/buy-crypto", trade{userID, assetID, amount, assetAmount})
}

func (c *Client) SellCrypto(ctx context.Context, userID int, assetID string, amount, assetAmount *float64) error {
	return c.ok(ctx, http.MethodPost, "/Transactions/sell-crypto", trade{userID, assetID, amount, assetAmount})
}

func (c *Client) BuyStock(ctx context.Context, userID int, assetID string, amount, assetAmount *float64) error {
	return c.ok(ctx, http.MethodPost, "/Transactions/buy-stock", trade{userID, assetID, amount, assetAmount})
}

func (c *Client) SellStock(ctx context.Context, userID int, assetID string, amount, assetAmount *float64) error {
	return c.ok(ctx, http.MethodPost, "/Transactions/sell-stock", trade{userID, assetID, amount, assetAmount})
}
