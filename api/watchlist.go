package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"marketfolio"
)

// Watchlists lists the user's followed assets of one type.
func (c *Client) Watchlists(ctx context.Context, userID int, typeAsset string) ([]marketfolio.Watchlist, error) {
	q := url.Values{
		"userId":    {strconv.Itoa(userID)},
		"typeAsset": {typeAsset},
	}
	var out []marketfolio.Watchlist
	err := c.getJSON(ctx, "/Watchlist", q, true, &out)
	return out, err
}

// CreateWatchlist starts following an asset. Following an already followed
// asset is a backend-side no-op.
func (c *Client) CreateWatchlist(ctx context.Context, entry marketfolio.Watchlist) error {
	return c.ok(ctx, http.MethodPost, "/Watchlist", entry)
}

// DeleteWatchlist stops following an asset.
func (c *Client) DeleteWatchlist(ctx context.Context, entry marketfolio.Watchlist) error {
	return c.ok(ctx, http.MethodDelete, "/Watchlist", entry)
}
