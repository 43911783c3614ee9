// Package marketfolio implements the client-side core of a crypto and equity
// portfolio dashboard. The backend owns the data: it computes asset prices,
// per-user aggregates and authentication tokens. This package owns everything
// a client needs around that boundary:
//
//   - Currency Engine: pure functions converting USD-denominated values into a
//     display currency and rendering them with tiered precision, large-number
//     grouping, magnitude abbreviation and privacy masking.
//   - Session & Access Control: the authenticated session (token, role, user id),
//     restored from durable storage across runs, and the guard deciding whether
//     a requested view is allowed, redirected to the landing page, or redirected
//     to the user's own private area.
//   - Data Caches: per-domain stores (cryptos, stocks, market aggregates,
//     transactions, watchlists, users) that read through to the backend, keep
//     the last good snapshot on failure, and write through mutations
//     (buy, sell, deposit, withdraw, watchlist add/remove) without ever
//     applying the change locally.
//
// All numeric asset values are USD at the boundary; currency conversion is a
// presentation-time operation and is never stored. This package serves as the
// foundational logic for the `mf` command-line dashboard.
package marketfolio
