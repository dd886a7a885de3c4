package meter

import (
	"github.com/hydrowatch/hydrowatch/internal/meter/repository"
	"github.com/hydrowatch/hydrowatch/internal/meter/service"
	"go.uber.org/fx"
)

var Module = fx.Module("meter.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
