// internal/app/bootstrap/appconfig.go
package bootstrap

import "strings"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// All durable state lives in the remote document/file store, so the
// bulk of the configuration is how to reach it: endpoint, project,
// administrative key, and the database/collection/bucket identifiers
// the handlers proxy to. WAFFLE's CoreConfig covers framework-level
// settings (ports, TLS, logging, environment).
type AppConfig struct {
	// Remote document/file store
	AppwriteEndpoint string // base URL, e.g. "https://cloud.appwrite.io/v1"
	AppwriteProject  string // project identifier sent on every request
	AppwriteAPIKey   string // administrative API key (server-side only)

	// Document layout inside the store
	DatabaseID           string
	ProfilesCollectionID string
	GroupsCollectionID   string
	MessagesCollectionID string
	StorageBucketID      string

	// Application base URL; OAuth success/failure callbacks are built
	// against it.
	BaseURL string

	// Allowed CORS origins, comma-separated.
	CORSOrigins string

	// Session cookie name (default "session") and the signing key for
	// the short-lived OAuth state cookie.
	SessionCookieName string
	OAuthStateKey     string
}

// corsOriginList splits the configured origins for the CORS middleware.
func (c AppConfig) corsOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
