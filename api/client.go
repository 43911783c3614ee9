// Package api is the typed HTTP client for the dashboard backend. Every
// payload is decoded into an explicit record type from the root package;
// untyped blobs stop at this boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// TokenSource hands out the current bearer token. The session store owns the
// token; everything else borrows it read-only through this interface.
type TokenSource interface {
	Token() string
}

// Client talks to one backend instance. The zero value is not usable, use New.
type Client struct {
	base   string
	hc     *http.Client
	tokens TokenSource
}

// New returns a client for the backend at base. tokens may be nil for a
// client that only hits public routes.
func New(base string, tokens TokenSource) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		hc:     new(http.Client),
		tokens: tokens,
	}
}

type staticTokenSource string

func (s staticTokenSource) Token() string { return string(s) }

// WithToken returns a copy of the client authenticated with a fixed token.
// The login flow needs it to resolve the user identity with a token that is
// not committed to the session yet.
func (c *Client) WithToken(token string) *Client {
	cc := *c
	cc.tokens = staticTokenSource(token)
	return &cc
}

func (c *Client) url(path string, query url.Values) string {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// send performs one request. A non-nil body is sent as JSON. When auth is
// true the current token is attached as a bearer header.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any, auth bool) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cannot encode %s %s body: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), payload)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if auth && c.tokens != nil {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot execute http request %s %s: %w", method, path, err)
	}
	return resp, nil
}

// getJSON GETs the path and decodes the JSON payload into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, auth bool, out any) error {
	resp, err := c.send(ctx, http.MethodGet, path, query, nil, auth)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %s: %s", path, resp.Status)
	}
	// read fully first so a decode error can name the route, not a stream position
	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read response of %s: %w", path, err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("unexpected payload from %s: %w", path, err)
	}
	return nil
}

// ok sends the request and reports only HTTP success, draining the body.
// This is the shape of every write route: the backend applies the mutation
// and answers 2xx, the effect is observed by a later re-fetch.
func (c *Client) ok(ctx context.Context, method, path string, body any) error {
	resp, err := c.send(ctx, method, path, nil, body, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s rejected: %s", method, path, resp.Status)
	}
	return nil
}
