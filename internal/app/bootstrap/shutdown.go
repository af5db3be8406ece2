// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down resources. The remote store client holds no
// connections of its own beyond the HTTP client's idle pool, so there
// is nothing to disconnect.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	logger.Info("genielearn shut down")
	return nil
}
