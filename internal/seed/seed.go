// Package seed registers the bootstrap meter set.
package seed

import (
	"context"
	"errors"

	"github.com/hydrowatch/hydrowatch/internal/config"
	meterdomain "github.com/hydrowatch/hydrowatch/internal/meter/domain"
	"go.uber.org/zap"
)

var defaultMeters = []meterdomain.RegisterRequest{
	{MeterID: "WM001", Location: "Building A", OwnerName: "John Doe"},
	{MeterID: "WM002", Location: "Building B", OwnerName: "Jane Smith"},
	{MeterID: "WM003", Location: "Building C", OwnerName: "Bob Johnson"},
}

// EnsureDefaultMeters registers the default meters at startup. Already
// registered meters are left alone.
func EnsureDefaultMeters(cfg config.Config, log *zap.Logger, meters meterdomain.Service) error {
	if !cfg.SeedMeters {
		return nil
	}

	ctx := context.Background()
	for _, req := range defaultMeters {
		if _, err := meters.Register(ctx, req); err != nil {
			if errors.Is(err, meterdomain.ErrDuplicateMeter) {
				continue
			}
			return err
		}
	}

	log.Named("seed").Info("default meters ensured", zap.Int("count", len(defaultMeters)))
	return nil
}
