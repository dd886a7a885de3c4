package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/hydrowatch/hydrowatch/internal/alert"
	"github.com/hydrowatch/hydrowatch/internal/clock"
	"github.com/hydrowatch/hydrowatch/internal/config"
	"github.com/hydrowatch/hydrowatch/internal/meter"
	"github.com/hydrowatch/hydrowatch/internal/monitor"
	obsmetrics "github.com/hydrowatch/hydrowatch/internal/observability/metrics"
	"github.com/hydrowatch/hydrowatch/internal/report"
	"github.com/hydrowatch/hydrowatch/internal/seed"
	"github.com/hydrowatch/hydrowatch/internal/usage"
	"github.com/hydrowatch/hydrowatch/pkg/log"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		clock.Module,
		obsmetrics.Module,
		fx.Provide(RegisterSnowflake),

		// Domain modules
		meter.Module,
		usage.Module,
		alert.Module,
		report.Module,
		monitor.Module,

		fx.Invoke(seed.EnsureDefaultMeters),
		fx.Invoke(registerLifecycle),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

// registerLifecycle forces construction of the monitor and logs readiness.
// There is no network listener; the process idles until shutdown.
func registerLifecycle(lc fx.Lifecycle, logger *zap.Logger, m *monitor.Monitor) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("hydrowatch monitor ready",
				zap.Int("meters", len(m.Meters(ctx))),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("hydrowatch monitor stopped")
			return nil
		},
	})
}
