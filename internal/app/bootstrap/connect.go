// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/genielearn/genielearn/internal/app/system/timeouts"
	"github.com/genielearn/genielearn/internal/appwrite"
	"go.uber.org/zap"
)

// Connect builds the remote store client and verifies connectivity so
// a misconfigured endpoint or key fails startup, not the first request.
func Connect(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client := appwrite.New(appwrite.Config{
		Endpoint: appCfg.AppwriteEndpoint,
		Project:  appCfg.AppwriteProject,
		APIKey:   appCfg.AppwriteAPIKey,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.AsAdmin().Health(pingCtx); err != nil {
		logger.Error("remote store unreachable", zap.Error(err))
		return Deps{}, fmt.Errorf("remote store health check failed: %w", err)
	}

	logger.Info("remote store connected",
		zap.String("endpoint", appCfg.AppwriteEndpoint),
		zap.String("project", appCfg.AppwriteProject))

	return Deps{Remote: client}, nil
}

// EnsureSchema is a no-op: collections, attributes, and buckets are
// owned and provisioned by the remote store, not by this service.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
