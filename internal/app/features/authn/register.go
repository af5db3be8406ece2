// internal/app/features/authn/register.go
package authn

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/sanitize"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/genielearn/genielearn/internal/domain/models"
	"go.uber.org/zap"
)

const minPasswordLength = 8

type registerRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	SubjectsOfInterest []string `json:"subjects_of_interest"`
}

// HandleRegister handles POST /auth/register.
//
// Creates a remote identity, then a profile document whose ID equals
// the new account's ID. Registration does not log the user in; it only
// returns the new user ID.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.Validation(w, "Invalid request body")
		return
	}

	name := sanitize.Text(req.Name)
	email := strings.TrimSpace(req.Email)
	switch {
	case name == "":
		httpapi.Validation(w, "Name is required")
		return
	case email == "":
		httpapi.Validation(w, "Email is required")
		return
	case len(req.Password) < minPasswordLength:
		httpapi.Validation(w, "Password must be at least 8 characters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	acct, err := appwrite.NewAccount(h.Remote.AsAdmin()).Create(ctx, appwrite.UniqueID, email, req.Password, name)
	if err != nil {
		if appwrite.IsConflict(err) {
			httpapi.Conflict(w, "Email already registered")
			return
		}
		h.Log.Error("register: account creation failed", zap.Error(err))
		httpapi.Upstream(w, err)
		return
	}

	if _, err := h.Profiles.Create(ctx, models.Profile{
		ID:                 acct.ID,
		Name:               name,
		Email:              email,
		SubjectsOfInterest: sanitize.TextSlice(req.SubjectsOfInterest),
	}); err != nil {
		// The identity exists but its profile does not; /auth/me falls
		// back to bare account fields, so registration still succeeded.
		h.Log.Error("register: profile creation failed",
			zap.String("user_id", acct.ID), zap.Error(err))
	}

	httpapi.JSON(w, http.StatusOK, map[string]string{
		"message": "Registration successful",
		"userId":  acct.ID,
	})
}
