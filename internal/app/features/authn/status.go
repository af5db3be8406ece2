// internal/app/features/authn/status.go
package authn

import (
	"net/http"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/session"
)

// HandleStatus handles GET /auth/status.
//
// Reports only whether a session cookie is present and non-empty;
// never the token value. Nothing here can fail, so the fail-open-to-
// false contract is satisfied structurally.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_, ok := session.Token(r)
	httpapi.JSON(w, http.StatusOK, map[string]bool{"hasSession": ok})
}
