// internal/app/features/authn/login.go
package authn

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/genielearn/genielearn/internal/appwrite"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /auth/login.
//
// Credentials are forwarded to the remote store's password-session
// creation. A remote unauthorized answer becomes a generic 400 that
// never reveals whether the email exists. Success sets the session
// cookie and returns the user ID.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.Validation(w, "Invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		httpapi.Validation(w, "Email is required")
		return
	}
	if req.Password == "" {
		httpapi.Validation(w, "Password is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sess, err := appwrite.NewAccount(h.Remote.AsAdmin()).CreateEmailSession(ctx, email, req.Password)
	if err != nil {
		if appwrite.IsUnauthorized(err) {
			httpapi.Fail(w, http.StatusBadRequest, "Incorrect email or password")
			return
		}
		h.Log.Error("login: session creation failed", zap.Error(err))
		httpapi.Upstream(w, err)
		return
	}

	h.Sessions.SetCookie(w, sess.Secret)
	httpapi.JSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"userId":  sess.UserID,
	})
}
