// internal/app/features/groups/messages.go
package groups

import (
	"context"
	"net/http"

	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleMessages handles GET /groups/{id}/messages, the read side of
// the group chat. Messages come back in timestamp order.
func (h *Handler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	if groupID == "" {
		httpapi.Validation(w, "Group ID is required")
		return
	}
	limit, offset := parsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Confirm the group exists so a bad ID is a 404, not an empty list.
	if _, err := h.Groups.GetByID(ctx, groupID); err != nil {
		httpapi.MapRemote(w, err, "Group")
		return
	}

	list, err := h.Messages.ListByGroup(ctx, groupID, limit, offset)
	if err != nil {
		h.Log.Error("group messages fetch failed",
			zap.String("group_id", groupID), zap.Error(err))
		httpapi.Upstream(w, err)
		return
	}

	out := make([]messageView, 0, len(list))
	for _, m := range list {
		out = append(out, viewMessage(m))
	}
	httpapi.JSON(w, http.StatusOK, out)
}
