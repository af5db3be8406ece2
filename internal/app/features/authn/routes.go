// internal/app/features/authn/routes.go
package authn

import (
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, rs *session.Resolver) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.HandleLogin)
	r.Post("/register", h.HandleRegister)
	r.Post("/logout", h.HandleLogout)
	r.Get("/status", h.HandleStatus)
	r.Post("/oauth", h.HandleOAuthInitiate)
	r.Get("/oauth/callback", h.HandleOAuthCallback)

	r.Group(func(pr chi.Router) {
		pr.Use(rs.RequireSession)
		pr.Get("/me", h.HandleMe)
	})

	return r
}
