// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for GenieLearn.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: appwrite_endpoint, base_url, etc.
//   - Environment variables: GENIELEARN_APPWRITE_ENDPOINT, etc.
//   - Command-line flags: --appwrite_endpoint, --base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "appwrite_endpoint", Default: "http://localhost/v1", Desc: "Remote store endpoint URL"},
	{Name: "appwrite_project", Default: "", Desc: "Remote store project identifier"},
	{Name: "appwrite_api_key", Default: "", Desc: "Remote store administrative API key"},

	{Name: "appwrite_database_id", Default: "", Desc: "Database identifier inside the remote store"},
	{Name: "profiles_collection_id", Default: "profiles", Desc: "Collection identifier for user profiles"},
	{Name: "groups_collection_id", Default: "groups", Desc: "Collection identifier for groups"},
	{Name: "messages_collection_id", Default: "messages", Desc: "Collection identifier for messages"},
	{Name: "storage_bucket_id", Default: "", Desc: "Bucket identifier for uploaded files"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Application base URL for OAuth callbacks"},
	{Name: "cors_origins", Default: "http://localhost:3000", Desc: "Allowed CORS origins (comma-separated)"},
	{Name: "session_cookie_name", Default: "session", Desc: "Session cookie name"},
	{Name: "oauth_state_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Signing key for the OAuth state cookie (must be strong in production)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GENIELEARN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		AppwriteEndpoint: appValues.String("appwrite_endpoint"),
		AppwriteProject:  appValues.String("appwrite_project"),
		AppwriteAPIKey:   appValues.String("appwrite_api_key"),

		DatabaseID:           appValues.String("appwrite_database_id"),
		ProfilesCollectionID: appValues.String("profiles_collection_id"),
		GroupsCollectionID:   appValues.String("groups_collection_id"),
		MessagesCollectionID: appValues.String("messages_collection_id"),
		StorageBucketID:      appValues.String("storage_bucket_id"),

		BaseURL:     appValues.String("base_url"),
		CORSOrigins: appValues.String("cors_origins"),

		SessionCookieName: appValues.String("session_cookie_name"),
		OAuthStateKey:     appValues.String("oauth_state_key"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig fails fast when a required identifier is absent,
// rather than letting the first proxied request discover it.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if _, err := url.ParseRequestURI(appCfg.AppwriteEndpoint); err != nil {
		logger.Error("invalid remote store endpoint", zap.Error(err))
		return fmt.Errorf("invalid appwrite_endpoint: %w", err)
	}

	required := map[string]string{
		"appwrite_project":       appCfg.AppwriteProject,
		"appwrite_api_key":       appCfg.AppwriteAPIKey,
		"appwrite_database_id":   appCfg.DatabaseID,
		"profiles_collection_id": appCfg.ProfilesCollectionID,
		"groups_collection_id":   appCfg.GroupsCollectionID,
		"messages_collection_id": appCfg.MessagesCollectionID,
		"storage_bucket_id":      appCfg.StorageBucketID,
		"base_url":               appCfg.BaseURL,
	}
	for _, name := range []string{
		"appwrite_project", "appwrite_api_key", "appwrite_database_id",
		"profiles_collection_id", "groups_collection_id", "messages_collection_id",
		"storage_bucket_id", "base_url",
	} {
		if required[name] == "" {
			return fmt.Errorf("missing required config value: %s", name)
		}
	}

	if len(appCfg.OAuthStateKey) < 32 {
		logger.Warn("oauth_state_key is short; 32+ chars recommended",
			zap.Int("length", len(appCfg.OAuthStateKey)))
	}

	return nil
}
