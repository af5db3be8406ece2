// internal/app/features/groups/members.go
package groups

import (
	"context"
	"net/http"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// memberLookupConcurrency bounds the parallel profile fan-out.
const memberLookupConcurrency = 8

// HandleMembers handles GET /groups/{id}/members.
//
// Each member ID resolves to a profile through the administrative
// client; the caller's own session cannot read other users' profiles.
// Lookups run with bounded concurrency, and a failed lookup omits that
// member instead of failing the endpoint.
func (h *Handler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		httpapi.Validation(w, "Group ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, groupID)
	if err != nil {
		httpapi.MapRemote(w, err, "Group")
		return
	}

	// Results keep member-list order; nil slots mark omitted members.
	resolved := make([]*memberEntry, len(g.Members))
	var eg errgroup.Group
	eg.SetLimit(memberLookupConcurrency)
	for i, memberID := range g.Members {
		eg.Go(func() error {
			p, err := h.Profiles.GetByID(ctx, memberID)
			if err != nil {
				h.Log.Warn("member profile lookup failed; omitting member",
					zap.String("group_id", groupID),
					zap.String("member_id", memberID),
					zap.Error(err))
				return nil
			}
			role := "member"
			if memberID == g.CreatorID {
				role = "creator"
			}
			resolved[i] = &memberEntry{
				ID:       p.ID,
				UserID:   p.ID,
				Name:     p.Name,
				Email:    p.Email,
				Role:     role,
				JoinedAt: p.CreatedAt,
			}
			return nil
		})
	}
	// Lookups never return errors; partial results stand.
	_ = eg.Wait()

	out := make([]memberEntry, 0, len(resolved))
	for _, m := range resolved {
		if m != nil {
			out = append(out, *m)
		}
	}
	httpapi.JSON(w, http.StatusOK, out)
}
