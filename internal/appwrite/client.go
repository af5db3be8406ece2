// internal/appwrite/client.go
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds connection settings for the remote document/file store.
type Config struct {
	Endpoint string // e.g. "https://cloud.appwrite.io/v1"
	Project  string
	APIKey   string

	// HTTPClient overrides the default client; mainly for tests.
	HTTPClient *http.Client
}

type authMode int

const (
	authNone authMode = iota
	authAdmin
	authSession
)

// Client is a thin REST client for the remote document/file store.
//
// A base Client carries no credentials. Derive a scoped client with
// AsAdmin (full cross-user privilege via the API key) or AsSession
// (scoped to one user's session secret). The two scopes must never be
// conflated: admin where a session suffices over-exposes data, and a
// session where cross-user access is needed under-authorizes.
type Client struct {
	endpoint string
	project  string
	apiKey   string
	httpc    *http.Client

	mode    authMode
	session string
}

// New builds an unauthenticated base client. Callers derive scoped
// clients from it per request.
func New(cfg Config) *Client {
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		project:  cfg.Project,
		apiKey:   cfg.APIKey,
		httpc:    httpc,
	}
}

// AsAdmin returns a copy of the client that authenticates with the
// administrative API key.
func (c *Client) AsAdmin() *Client {
	cp := *c
	cp.mode = authAdmin
	cp.session = ""
	return &cp
}

// AsSession returns a copy of the client that authenticates with a
// user's opaque session secret.
func (c *Client) AsSession(secret string) *Client {
	cp := *c
	cp.mode = authSession
	cp.session = secret
	return &cp
}

// Endpoint returns the configured base URL of the remote store.
func (c *Client) Endpoint() string { return c.endpoint }

// Project returns the configured project identifier.
func (c *Client) Project() string { return c.project }

// call performs one request against the remote store. Remote error
// bodies decode into *Error; transport failures are wrapped as-is.
// When out is non-nil the success body is decoded into it.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Appwrite-Project", c.project)
	switch c.mode {
	case authAdmin:
		req.Header.Set("X-Appwrite-Key", c.apiKey)
	case authSession:
		req.Header.Set("X-Appwrite-Session", c.session)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("remote store unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		re := &Error{}
		if derr := json.NewDecoder(resp.Body).Decode(re); derr != nil || re.Code == 0 {
			re.Code = resp.StatusCode
			if re.Message == "" {
				re.Message = http.StatusText(resp.StatusCode)
			}
		}
		return re
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}
