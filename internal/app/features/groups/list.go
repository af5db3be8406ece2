// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/genielearn/genielearn/internal/app/system/httpapi"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// parsePage reads limit/offset query params with the listing defaults.
func parsePage(r *http.Request) (limit, offset int) {
	limit = defaultListLimit
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if s := query.Get(r, "offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

// HandleList handles GET /groups. Unauthenticated: the group directory
// is public. Ordered by creation descending.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Groups.ListPage(ctx, limit, offset)
	if err != nil {
		h.Log.Error("groups list failed", zap.Error(err))
		httpapi.Upstream(w, err)
		return
	}

	out := make([]groupSummary, 0, len(list))
	for _, g := range list {
		out = append(out, summarize(g))
	}
	httpapi.JSON(w, http.StatusOK, out)
}
