package bootstrap

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		AppwriteEndpoint:     "http://localhost/v1",
		AppwriteProject:      "proj",
		AppwriteAPIKey:       "key",
		DatabaseID:           "db",
		ProfilesCollectionID: "profiles",
		GroupsCollectionID:   "groups",
		MessagesCollectionID: "messages",
		StorageBucketID:      "files",
		BaseURL:              "http://localhost:3000",
		CORSOrigins:          "http://localhost:3000",
		SessionCookieName:    "session",
		OAuthStateKey:        "0123456789abcdef0123456789abcdef",
	}
}

func TestValidateConfig_OK(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig failed on valid config: %v", err)
	}
}

func TestValidateConfig_MissingRequired(t *testing.T) {
	cases := map[string]func(*AppConfig){
		"appwrite_project":     func(c *AppConfig) { c.AppwriteProject = "" },
		"appwrite_api_key":     func(c *AppConfig) { c.AppwriteAPIKey = "" },
		"appwrite_database_id": func(c *AppConfig) { c.DatabaseID = "" },
		"storage_bucket_id":    func(c *AppConfig) { c.StorageBucketID = "" },
		"base_url":             func(c *AppConfig) { c.BaseURL = "" },
	}
	for name, clear := range cases {
		cfg := validAppConfig()
		clear(&cfg)
		if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
			t.Errorf("%s: expected error when missing", name)
		}
	}
}

func TestValidateConfig_BadEndpoint(t *testing.T) {
	cfg := validAppConfig()
	cfg.AppwriteEndpoint = "not a url"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for malformed endpoint")
	}
}

func TestCORSOriginList(t *testing.T) {
	cfg := AppConfig{CORSOrigins: "http://localhost:3000, https://app.example ,, "}
	got := cfg.corsOriginList()
	want := []string{"http://localhost:3000", "https://app.example"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("corsOriginList: got %v, want %v", got, want)
	}
}
