// internal/app/features/storage/routes.go
package storage

import (
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, rs *session.Resolver) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(rs.RequireSession)
		pr.Get("/{fileId}/view", h.HandleView)
		pr.Get("/{fileId}/download", h.HandleDownload)
	})

	return r
}
