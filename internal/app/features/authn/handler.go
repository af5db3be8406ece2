// internal/app/features/authn/handler.go
package authn

import (
	profilestore "github.com/genielearn/genielearn/internal/app/store/profiles"
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the auth gateway:
// login, register, logout, status, me, and the OAuth redirect pair.
// It is the only feature allowed to mutate the session cookie.
type Handler struct {
	Log      *zap.Logger
	Remote   *appwrite.Client
	Sessions *session.Resolver
	Profiles *profilestore.Store
	State    *securecookie.SecureCookie // signs the short-lived oauth_state cookie
	BaseURL  string
}

func NewHandler(
	remote *appwrite.Client,
	sessions *session.Resolver,
	profiles *profilestore.Store,
	state *securecookie.SecureCookie,
	baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Log:      logger,
		Remote:   remote,
		Sessions: sessions,
		Profiles: profiles,
		State:    state,
		BaseURL:  baseURL,
	}
}
