package store

import (
	"context"
	"log"

	"marketfolio"
	"marketfolio/api"
)

// WatchlistsStore caches the user's watchlist entries. Membership is a set
// owned by the backend; adding an entry that exists or removing one that
// does not is the backend's call to reject.
type WatchlistsStore struct {
	api *api.Client

	entries snapshot[[]marketfolio.Watchlist]
}

// NewWatchlists returns an empty watchlist cache over c.
func NewWatchlists(c *api.Client) *WatchlistsStore { return &WatchlistsStore{api: c} }

// Entries returns the cached watchlist, possibly stale or empty.
func (s *WatchlistsStore) Entries() []marketfolio.Watchlist { return s.entries.get() }

// Contains reports whether assetID is in the cached watchlist.
func (s *WatchlistsStore) Contains(assetID string) bool {
	for _, e := range s.entries.get() {
		if e.AssetID == assetID {
			return true
		}
	}
	return false
}

// GetWatchlists refreshes the watchlist of userID, optionally narrowed to
// one asset type.
func (s *WatchlistsStore) GetWatchlists(ctx context.Context, userID int, typeAsset string) bool {
	seq := s.entries.begin()
	list, err := s.api.Watchlists(ctx, userID, typeAsset)
	if err != nil {
		log.Printf("cannot fetch watchlist: %v", err)
		return false
	}
	s.entries.commit(seq, list)
	return true
}

// Add puts entry on the watchlist.
func (s *WatchlistsStore) Add(ctx context.Context, entry marketfolio.Watchlist) WriteResult {
	if err := s.api.CreateWatchlist(ctx, entry); err != nil {
		log.Printf("cannot add %s to watchlist: %v", entry.AssetID, err)
		return rejected()
	}
	return applied()
}

// Remove drops entry from the watchlist.
func (s *WatchlistsStore) Remove(ctx context.Context, entry marketfolio.Watchlist) WriteResult {
	if err := s.api.DeleteWatchlist(ctx, entry); err != nil {
		log.Printf("cannot remove %s from watchlist: %v", entry.AssetID, err)
		return rejected()
	}
	return applied()
}
