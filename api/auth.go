package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"marketfolio"
)

// Login exchanges credentials for a token. The backend answers the raw token
// as text, not JSON.
func (c *Client) Login(ctx context.Context, identifier, password string) (string, error) {
	body := struct {
		EmailOrPhone string `json:"emailOrPhone"`
		Password     string `json:"password"`
	}{identifier, password}

	resp, err := c.send(ctx, http.MethodPost, "/Auth/login", nil, body, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login rejected: %s", resp.Status)
	}
	token, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cannot read login token: %w", err)
	}
	return strings.TrimSpace(string(token)), nil
}

// Register creates a new account. No local state is involved.
func (c *Client) Register(ctx context.Context, profile marketfolio.Profile) error {
	resp, err := c.send(ctx, http.MethodPost, "/Auth/register", nil, profile, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("registration rejected: %s", resp.Status)
	}
	return nil
}

// UserByID fetches one user record, token required.
func (c *Client) UserByID(ctx context.Context, id int) (marketfolio.User, error) {
	var u marketfolio.User
	err := c.getJSON(ctx, fmt.Sprintf("/Users/%d", id), nil, true, &u)
	return u, err
}

// UserByIdentifier resolves a user record from the email or phone used to log
// in. This is the follow-up call that turns a fresh token into a full session.
func (c *Client) UserByIdentifier(ctx context.Context, identifier string) (marketfolio.User, error) {
	q := url.Values{"emailOrPhone": {identifier}}
	var u marketfolio.User
	err := c.getJSON(ctx, "/Users/by-email-phone", q, true, &u)
	return u, err
}

// UserUpdate is the profile-edit payload; nil fields are left unchanged by
// the backend.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// UpdateUser edits a user profile.
func (c *Client) UpdateUser(ctx context.Context, id int, update UserUpdate) error {
	return c.ok(ctx, http.MethodPut, fmt.Sprintf("/Users/%d", id), update)
}

// DeleteUser removes the account.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.ok(ctx, http.MethodDelete, fmt.Sprintf("/Users/%d", id), nil)
}
