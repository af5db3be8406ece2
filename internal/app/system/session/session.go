// internal/app/system/session/session.go
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/appwrite"
)

// DefaultCookieName is the session cookie name unless configured otherwise.
const DefaultCookieName = "session"

// TTL is the cookie max-age. Expiry is enforced by cookie attributes
// and by the remote store, not by this code.
const TTL = 30 * 24 * time.Hour

type ctxKey string

const tokenKey ctxKey = "sessionToken"

// Resolver extracts the opaque session token from the request cookie
// and resolves the calling identity against the remote store. It is
// read-only with respect to cookies; mutation happens only through the
// explicit SetCookie/ClearCookie helpers used by the auth gateway.
type Resolver struct {
	Name   string // cookie name
	Secure bool   // mark cookies Secure (production)
	Client *appwrite.Client
}

func NewResolver(name string, secure bool, client *appwrite.Client) *Resolver {
	if name == "" {
		name = DefaultCookieName
	}
	return &Resolver{Name: name, Secure: secure, Client: client}
}

// LoadSession is middleware that places the cookie's session token into
// the request context when it is present and non-empty.
func (rs *Resolver) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(rs.Name); err == nil && c.Value != "" {
			r = r.WithContext(context.WithValue(r.Context(), tokenKey, c.Value))
		}
		next.ServeHTTP(w, r)
	})
}

// Token returns the session token loaded by LoadSession.
func Token(r *http.Request) (string, bool) {
	tok, ok := r.Context().Value(tokenKey).(string)
	return tok, ok && tok != ""
}

// RequireSession rejects requests without a session token. A present
// but invalid token passes here and fails at the remote call, where
// handlers map it to 401 all the same.
func (rs *Resolver) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := Token(r); !ok {
			httpapi.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Account resolves the token to the calling identity via the store's
// session introspection. Centralized here so handlers don't each
// rebuild a session client to ask "who is the caller".
func (rs *Resolver) Account(ctx context.Context, token string) (appwrite.User, error) {
	return appwrite.NewAccount(rs.Client.AsSession(token)).Get(ctx)
}

// SetCookie persists a freshly issued session secret: HTTP-only,
// SameSite=Lax, Secure in production, root path, 30-day max-age. The
// value is the store's opaque secret verbatim; no local encoding.
func (rs *Resolver) SetCookie(w http.ResponseWriter, secret string) {
	http.SetCookie(w, &http.Cookie{
		Name:     rs.Name,
		Value:    secret,
		Path:     "/",
		MaxAge:   int(TTL / time.Second),
		HttpOnly: true,
		Secure:   rs.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie deletes the session cookie.
func (rs *Resolver) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     rs.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   rs.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// WithToken injects a session token into the request context directly,
// bypassing the cookie. Test helper.
func WithToken(r *http.Request, token string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), tokenKey, token))
}
