package report

import (
	"github.com/hydrowatch/hydrowatch/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.generator",
	fx.Provide(service.NewGenerator),
)
