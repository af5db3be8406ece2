// internal/app/features/authn/me.go
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

type meResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	SubjectsOfInterest []string `json:"subjects_of_interest"`
}

// HandleMe handles GET /auth/me.
//
// Resolves the session token to its account, then overlays the profile
// document with the same ID. An absent profile falls back to the bare
// account fields with an empty subject list.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	tok, ok := session.Token(r)
	if !ok {
		httpapi.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.Sessions.Account(ctx, tok)
	if err != nil {
		httpapi.MapRemote(w, err, "User")
		return
	}

	resp := meResponse{
		ID:                 acct.ID,
		Name:               acct.Name,
		Email:              acct.Email,
		SubjectsOfInterest: []string{},
	}

	profile, err := h.Profiles.GetByID(ctx, acct.ID)
	switch {
	case err == nil:
		resp.Name = profile.Name
		resp.Email = profile.Email
		if profile.SubjectsOfInterest != nil {
			resp.SubjectsOfInterest = profile.SubjectsOfInterest
		}
	case appwrite.IsNotFound(err):
		// No profile document; account fields stand.
	default:
		h.Log.Error("me: profile lookup failed", zap.String("user_id", acct.ID), zap.Error(err))
		httpapi.Upstream(w, err)
		return
	}

	httpapi.JSON(w, http.StatusOK, resp)
}
