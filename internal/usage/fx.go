package usage

import (
	"github.com/hydrowatch/hydrowatch/internal/usage/repository"
	"github.com/hydrowatch/hydrowatch/internal/usage/service"
	"go.uber.org/fx"
)

var Module = fx.Module("usage.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
