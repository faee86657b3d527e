// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/fieldhub/internal/app/resources"
	"github.com/dalemusser/fieldhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after schema setup and before the handler is built.
// It applies the configured Mongo deadlines and registers the shared templates.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:  appCfg.PingTimeout,
		Short: appCfg.ShortTimeout,
		Batch: appCfg.BatchTimeout,
	})
	resources.LoadSharedTemplates()
	logger.Info("startup complete",
		zap.String("store_backend", appCfg.StoreBackend),
		zap.Int("display_id_start", appCfg.DisplayIDStart))
	return nil
}
