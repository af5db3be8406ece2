// internal/app/features/groups/routes.go
package groups

import (
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, rs *session.Resolver) chi.Router {
	r := chi.NewRouter()

	// Public directory listing.
	r.Get("/", h.HandleList)

	// Trusted internal caller; the platform authors these itself.
	r.Post("/{id}/system-message", h.HandleSystemMessage)

	r.Group(func(pr chi.Router) {
		pr.Use(rs.RequireSession)
		pr.Get("/stats", h.HandleStats)
		pr.Post("/{id}/join", h.HandleJoin)
		pr.Get("/{id}/members", h.HandleMembers)
		pr.Get("/{id}/messages", h.HandleMessages)
	})

	return r
}
