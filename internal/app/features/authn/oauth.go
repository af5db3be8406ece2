// internal/app/features/authn/oauth.go
package authn

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/genielearn/genielearn/internal/appwrite"
	"go.uber.org/zap"
)

// Providers the remote store may broker for us. Anything else is
// rejected before a redirect URL is built.
var oauthProviders = map[string]struct{}{
	"google": {},
	"github": {},
}

const (
	oauthStateCookie = "oauth_state"
	oauthStateTTL    = 10 * time.Minute
)

type oauthRequest struct {
	Provider string `json:"provider"`
}

// HandleOAuthInitiate handles POST /auth/oauth.
//
// Builds the store's own OAuth redirect URL with success/failure
// callbacks pointing back into this app, and sets a signed short-lived
// state cookie the callback must present. The provider exchange itself
// happens entirely inside the store.
func (h *Handler) HandleOAuthInitiate(w http.ResponseWriter, r *http.Request) {
	var req oauthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.Validation(w, "Invalid request body")
		return
	}

	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if _, ok := oauthProviders[provider]; !ok {
		httpapi.Validation(w, "Unsupported OAuth provider")
		return
	}

	redirect := appwrite.NewAccount(h.Remote).OAuth2URL(provider,
		h.BaseURL+"/auth/oauth/callback",
		h.BaseURL+"/login?error=oauth",
	)

	state := map[string]string{
		"provider": provider,
		"issued":   strconv.FormatInt(time.Now().Unix(), 10),
	}
	encoded, err := h.State.Encode(oauthStateCookie, state)
	if err != nil {
		h.Log.Error("oauth: state encode failed", zap.Error(err))
		httpapi.Upstream(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(oauthStateTTL / time.Second),
		HttpOnly: true,
		Secure:   h.Sessions.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	httpapi.JSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"redirectUrl": redirect,
	})
}

// HandleOAuthCallback handles GET /auth/oauth/callback?userId&secret.
//
// The store redirects here after a successful provider exchange. The
// signed state cookie from initiate must be present and fresh; the
// userId/secret pair is then exchanged for a full session and the
// session cookie set. Every failure path lands on the login page with
// an error marker rather than a bare error body, since the caller is a
// browser mid-redirect.
func (h *Handler) HandleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	fail := func(reason string, err error) {
		h.Log.Warn("oauth callback rejected", zap.String("reason", reason), zap.Error(err))
		http.Redirect(w, r, h.BaseURL+"/login?error=oauth", http.StatusSeeOther)
	}

	c, err := r.Cookie(oauthStateCookie)
	if err != nil {
		fail("missing state cookie", err)
		return
	}
	state := map[string]string{}
	if err := h.State.Decode(oauthStateCookie, c.Value, &state); err != nil {
		fail("bad state cookie", err)
		return
	}
	if issued, err := strconv.ParseInt(state["issued"], 10, 64); err != nil ||
		time.Since(time.Unix(issued, 0)) > oauthStateTTL {
		fail("stale state cookie", err)
		return
	}

	userID := query.Get(r, "userId")
	secret := query.Get(r, "secret")
	if userID == "" || secret == "" {
		fail("missing userId/secret", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sess, err := appwrite.NewAccount(h.Remote.AsAdmin()).CreateSession(ctx, userID, secret)
	if err != nil {
		fail("session exchange failed", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Sessions.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	h.Sessions.SetCookie(w, sess.Secret)
	http.Redirect(w, r, h.BaseURL+"/", http.StatusSeeOther)
}
