package monitor

import "go.uber.org/fx"

var Module = fx.Module("monitor",
	fx.Provide(New),
)
