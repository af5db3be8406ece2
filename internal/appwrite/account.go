// internal/appwrite/account.go
package appwrite

import (
	"context"
	"net/http"
	"net/url"
)

// UniqueID asks the remote store to assign a fresh identifier.
const UniqueID = "unique()"

// User is an identity record owned by the remote store.
type User struct {
	ID    string `json:"$id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is issued on a successful credential check. Secret is the
// opaque token the gateway persists client-side; the store only returns
// it at creation time.
type Session struct {
	ID       string `json:"$id"`
	UserID   string `json:"userId"`
	Secret   string `json:"secret"`
	Expire   string `json:"expire"`
	Provider string `json:"provider"`
}

// Account wraps the remote store's identity API.
type Account struct {
	c *Client
}

func NewAccount(c *Client) *Account { return &Account{c: c} }

// Create registers a new identity. Pass UniqueID as userID to let the
// store assign the identifier. Duplicate email surfaces as a 409.
func (a *Account) Create(ctx context.Context, userID, email, password, name string) (User, error) {
	var u User
	err := a.c.call(ctx, http.MethodPost, "/account", nil, map[string]any{
		"userId":   userID,
		"email":    email,
		"password": password,
		"name":     name,
	}, &u)
	return u, err
}

// CreateEmailSession forwards a credential check to the store. Invalid
// credentials surface as a 401.
func (a *Account) CreateEmailSession(ctx context.Context, email, password string) (Session, error) {
	var s Session
	err := a.c.call(ctx, http.MethodPost, "/account/sessions/email", nil, map[string]any{
		"email":    email,
		"password": password,
	}, &s)
	return s, err
}

// CreateSession exchanges a userId/secret pair (handed back by the
// store's OAuth callback) for a full session.
func (a *Account) CreateSession(ctx context.Context, userID, secret string) (Session, error) {
	var s Session
	err := a.c.call(ctx, http.MethodPost, "/account/sessions/token", nil, map[string]any{
		"userId": userID,
		"secret": secret,
	}, &s)
	return s, err
}

// Get returns the account the client's session token belongs to.
// Requires a session-scoped client.
func (a *Account) Get(ctx context.Context) (User, error) {
	var u User
	err := a.c.call(ctx, http.MethodGet, "/account", nil, nil, &u)
	return u, err
}

// DeleteSession destroys a session remotely. Pass "current" to delete
// the session the client is authenticated with.
func (a *Account) DeleteSession(ctx context.Context, sessionID string) error {
	return a.c.call(ctx, http.MethodDelete, "/account/sessions/"+url.PathEscape(sessionID), nil, nil, nil)
}

// OAuth2URL builds the store's own OAuth redirect URL for the given
// provider. The provider exchange happens entirely inside the store;
// this layer only points the browser at it with success/failure
// callbacks back into the app.
func (a *Account) OAuth2URL(provider, success, failure string) string {
	q := url.Values{}
	q.Set("project", a.c.project)
	q.Set("success", success)
	q.Set("failure", failure)
	return a.c.endpoint + "/account/sessions/oauth2/" + url.PathEscape(provider) + "?" + q.Encode()
}
