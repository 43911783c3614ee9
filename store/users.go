package store

import (
	"context"
	"log"

	"marketfolio"
	"marketfolio/api"
)

// UsersStore caches the inspected user record and carries the profile
// write actions.
type UsersStore struct {
	api *api.Client

	user snapshot[marketfolio.User]
}

// NewUsers returns an empty user cache over c.
func NewUsers(c *api.Client) *UsersStore { return &UsersStore{api: c} }

// User returns the last fetched record.
func (s *UsersStore) User() marketfolio.User { return s.user.get() }

// GetUser refreshes the record of id.
func (s *UsersStore) GetUser(ctx context.Context, id int) bool {
	seq := s.user.begin()
	u, err := s.api.UserByID(ctx, id)
	if err != nil {
		log.Printf("cannot fetch user %d: %v", id, err)
		return false
	}
	s.user.commit(seq, u)
	return true
}

// UpdateUser edits the profile of id. Nil fields in update are left as is.
func (s *UsersStore) UpdateUser(ctx context.Context, id int, update api.UserUpdate) WriteResult {
	if err := s.api.UpdateUser(ctx, id, update); err != nil {
		log.Printf("cannot update user %d: %v", id, err)
		return rejected()
	}
	return applied()
}

// DeleteUser removes the account of id. The caller is responsible for
// logging out afterwards.
func (s *UsersStore) DeleteUser(ctx context.Context, id int) WriteResult {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		log.Printf("cannot delete user %d: %v", id, err)
		return rejected()
	}
	return applied()
}
