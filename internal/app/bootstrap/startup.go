// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the remote
// store connection is verified, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	logger.Info("genielearn starting",
		zap.String("base_url", appCfg.BaseURL),
		zap.String("database_id", appCfg.DatabaseID))
	return nil
}
