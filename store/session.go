package store

import (
	"context"
	"log"
	"strconv"
	"sync"

	"marketfolio"
	"marketfolio/api"
	"marketfolio/storage"
)

// Storage keys for the persisted session fields.
const (
	keyToken  = "token"
	keyRole   = "role"
	keyUserID = "userId"
)

// SessionStore holds the authenticated session and keeps it in sync with
// durable storage so a restart resumes where the last run left off.
//
// Login is atomic: the token is exchanged, then the user identity is resolved
// with that token, and only when both succeed is anything committed. A failed
// identity lookup leaves the store exactly as it was.
type SessionStore struct {
	kv  *storage.Store
	api *api.Client

	mu   sync.RWMutex
	cur  marketfolio.Session
	subs []func(marketfolio.Session)
}

// NewSession restores the session persisted in kv. Missing keys restore as a
// logged-out session.
func NewSession(kv *storage.Store) *SessionStore {
	s := &SessionStore{kv: kv}
	s.cur = marketfolio.Session{
		Token: kv.Get(keyToken),
		Role:  marketfolio.Role(kv.Get(keyRole)),
	}
	if id, err := strconv.Atoi(kv.Get(keyUserID)); err == nil {
		s.cur.UserID = id
	}
	return s
}

// SetAPI wires the backend client used by Login and Register.
func (s *SessionStore) SetAPI(c *api.Client) { s.api = c }

// Token implements api.TokenSource so the store can authorize the client it
// is wired to.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}

// Session returns the current session.
func (s *SessionStore) Session() marketfolio.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// IsLoggedIn reports whether a token is held.
func (s *SessionStore) IsLoggedIn() bool { return s.Session().LoggedIn() }

// Role returns the current role, empty when logged out.
func (s *SessionStore) Role() marketfolio.Role { return s.Session().Role }

// UserID returns the current user id, zero when logged out.
func (s *SessionStore) UserID() int { return s.Session().UserID }

// Subscribe registers fn to run after every session change.
func (s *SessionStore) Subscribe(fn func(marketfolio.Session)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *SessionStore) notify(cur marketfolio.Session) {
	s.mu.RLock()
	subs := make([]func(marketfolio.Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(cur)
	}
}

// Login authenticates with the backend and commits the resulting session.
// It reports whether the login succeeded; on failure nothing is written, in
// memory or on disk.
func (s *SessionStore) Login(ctx context.Context, identifier, password string) bool {
	token, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		log.Printf("login failed: %v", err)
		return false
	}
	// The identity lookup runs with the fresh token before it is committed.
	user, err := s.api.WithToken(token).UserByIdentifier(ctx, identifier)
	if err != nil {
		log.Printf("login failed: cannot resolve user: %v", err)
		return false
	}

	cur := marketfolio.Session{Token: token, Role: user.Role, UserID: user.ID}
	s.mu.Lock()
	s.cur = cur
	s.mu.Unlock()

	s.persist(keyToken, cur.Token)
	s.persist(keyRole, string(cur.Role))
	s.persist(keyUserID, strconv.Itoa(cur.UserID))
	s.notify(cur)
	return true
}

// Register creates a new account. It does not log the new user in.
func (s *SessionStore) Register(ctx context.Context, profile marketfolio.Profile) bool {
	if err := s.api.Register(ctx, profile); err != nil {
		log.Printf("registration failed: %v", err)
		return false
	}
	return true
}

// Logout drops the session from memory and storage before returning, so a
// caller can rely on protected state being gone when the call ends.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.cur = marketfolio.Session{}
	s.mu.Unlock()

	for _, key := range []string{keyToken, keyRole, keyUserID} {
		if err := s.kv.Delete(key); err != nil {
			log.Printf("cannot clear %s: %v", key, err)
		}
	}
	s.notify(marketfolio.Session{})
}

func (s *SessionStore) persist(key, value string) {
	if err := s.kv.Set(key, value); err != nil {
		log.Printf("cannot persist %s: %v", key, err)
	}
}
