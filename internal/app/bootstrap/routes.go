// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	authnfeature "github.com/genielearn/genielearn/internal/app/features/authn"
	groupsfeature "github.com/genielearn/genielearn/internal/app/features/groups"
	healthfeature "github.com/genielearn/genielearn/internal/app/features/health"
	storagefeature "github.com/genielearn/genielearn/internal/app/features/storage"
	groupstore "github.com/genielearn/genielearn/internal/app/store/groups"
	messagestore "github.com/genielearn/genielearn/internal/app/store/messages"
	profilestore "github.com/genielearn/genielearn/internal/app/store/profiles"
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, the remote-store connection
// check, and any Startup hooks have completed. One admin-scoped client
// backs every document/file store; the session resolver derives
// per-request session clients for identity calls. That split is the
// single authorization policy: identity through the caller's session,
// documents and files through the administrative key.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"

	sessions := session.NewResolver(appCfg.SessionCookieName, secure, deps.Remote)

	// Stores share one admin-scoped databases client.
	databases := appwrite.NewDatabases(deps.Remote.AsAdmin(), appCfg.DatabaseID)
	profiles := profilestore.New(databases, appCfg.ProfilesCollectionID)
	groups := groupstore.New(databases, appCfg.GroupsCollectionID)
	messages := messagestore.New(databases, appCfg.MessagesCollectionID)
	files := appwrite.NewStorage(deps.Remote.AsAdmin(), appCfg.StorageBucketID)

	stateCodec := securecookie.New([]byte(appCfg.OAuthStateKey), nil)

	r := chi.NewRouter()

	// The browser frontend lives on another origin and sends the
	// session cookie with every call.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.corsOriginList(),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Global session middleware: loads the cookie token into context.
	r.Use(sessions.LoadSession)

	healthHandler := healthfeature.NewHandler(deps.Remote, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	authnHandler := authnfeature.NewHandler(deps.Remote, sessions, profiles, stateCodec, appCfg.BaseURL, logger)
	r.Mount("/auth", authnfeature.Routes(authnHandler, sessions))

	groupsHandler := groupsfeature.NewHandler(groups, profiles, messages, sessions, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler, sessions))

	storageHandler := storagefeature.NewHandler(files, logger)
	r.Mount("/storage", storagefeature.Routes(storageHandler, sessions))

	return r, nil
}
