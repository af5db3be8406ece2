// internal/app/features/groups/stats.go
package groups

import (
	"context"
	"net/http"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// statsPageSize bounds the stats computation to one page of groups.
const statsPageSize = 1000

// HandleStats handles GET /groups/stats.
//
// Counts are computed over at most statsPageSize groups fetched in one
// page. publicGroupsNotJoined is derived, keeping the identity
// totalPublicGroups = publicGroupsJoined + publicGroupsNotJoined.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	tok, ok := session.Token(r)
	if !ok {
		httpapi.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	acct, err := h.Sessions.Account(ctx, tok)
	if err != nil {
		httpapi.MapRemote(w, err, "User")
		return
	}

	list, err := h.Groups.ListPage(ctx, statsPageSize, 0)
	if err != nil {
		h.Log.Error("group stats fetch failed", zap.Error(err))
		httpapi.Upstream(w, err)
		return
	}

	var stats groupStats
	stats.TotalGroups = len(list)
	for _, g := range list {
		joined := g.HasMember(acct.ID)
		if joined {
			stats.UserJoinedGroups++
		}
		if g.IsPublic {
			stats.TotalPublicGroups++
			if joined {
				stats.PublicGroupsJoined++
			}
		}
	}
	stats.PublicGroupsNotJoined = stats.TotalPublicGroups - stats.PublicGroupsJoined

	httpapi.JSON(w, http.StatusOK, stats)
}
