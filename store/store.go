// Package store holds the client-side state of the dashboard: the
// authenticated session, the user preferences, and one read-through cache per
// backend domain (cryptos, stocks, market aggregates, transactions,
// watchlists, users).
//
// Every cache follows the same contract. Read actions go to the network and
// replace the cached snapshot on success; on any failure the previous
// snapshot stays available and the action reports false. Search actions hand
// their result straight to the caller and never touch shared state. Write
// actions send the mutation and report whether it was applied; they never
// patch the local snapshot, callers re-run a read action to observe the
// effect. Errors never escape an action: they are logged and collapsed to a
// safe default.
package store

import "sync"

// WriteResult is the outcome of a write-through mutation. Applied says the
// backend accepted it; ShouldRefetch reminds the caller that the local
// snapshot does not reflect the change until re-fetched.
type WriteResult struct {
	Applied       bool
	ShouldRefetch bool
}

func applied() WriteResult { return WriteResult{Applied: true, ShouldRefetch: true} }
func rejected() WriteResult { return WriteResult{} }

// snapshot is one cached collection with stale-response protection. Every
// fetch takes a sequence number before hitting the network; a response may
// only install its value if no younger fetch committed first, so two
// overlapping fetches of the same collection have a defined winner: the
// youngest issued, whatever order the network resolves them in.
type snapshot[T any] struct {
	mu      sync.RWMutex
	issued  uint64
	applied uint64
	value   T
}

func (s *snapshot[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// commit installs v unless a younger fetch already committed.
func (s *snapshot[T]) commit(seq uint64, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.value = v
	return true
}

func (s *snapshot[T]) get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}
