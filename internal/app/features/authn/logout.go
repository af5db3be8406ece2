// internal/app/features/authn/logout.go
package authn

import (
	"context"
	"net/http"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/genielearn/genielearn/internal/appwrite"
	"go.uber.org/zap"
)

// HandleLogout handles POST /auth/logout.
//
// Never-fail contract: remote deletion is best-effort (the session may
// already be invalid remotely), the local cookie is always cleared, and
// the caller always gets success.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if tok, ok := session.Token(r); ok {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		if err := appwrite.NewAccount(h.Remote.AsSession(tok)).DeleteSession(ctx, "current"); err != nil {
			h.Log.Warn("logout: remote session delete failed", zap.Error(err))
		}
	}

	h.Sessions.ClearCookie(w)
	httpapi.Message(w, http.StatusOK, "Logged out")
}
