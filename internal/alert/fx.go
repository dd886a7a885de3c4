package alert

import "go.uber.org/fx"

var Module = fx.Module("alert.center",
	fx.Provide(NewCenter),
	fx.Provide(NewHistory),
)
