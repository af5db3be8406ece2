// internal/app/features/groups/join.go
package groups

import (
	"context"
	"errors"
	"net/http"

	groupstore "github.com/genielearn/genielearn/internal/app/store/groups"
	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleJoin handles POST /groups/{id}/join.
//
// Joining twice yields 400, not a duplicate entry. The store serializes
// joins per group, so two concurrent joins through this process both
// land in the member list.
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	tok, ok := session.Token(r)
	if !ok {
		httpapi.Unauthorized(w)
		return
	}
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		httpapi.Validation(w, "Group ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	acct, err := h.Sessions.Account(ctx, tok)
	if err != nil {
		httpapi.MapRemote(w, err, "User")
		return
	}

	if _, err := h.Groups.Join(ctx, groupID, acct.ID); err != nil {
		if errors.Is(err, groupstore.ErrAlreadyMember) {
			httpapi.Conflict(w, "Already a member of this group")
			return
		}
		h.Log.Error("group join failed",
			zap.String("group_id", groupID), zap.String("user_id", acct.ID), zap.Error(err))
		httpapi.MapRemote(w, err, "Group")
		return
	}

	httpapi.Message(w, http.StatusOK, "Joined group successfully")
}
