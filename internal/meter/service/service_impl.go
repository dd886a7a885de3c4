package service

import (
	"context"
	"strings"

	meterdomain "github.com/hydrowatch/hydrowatch/internal/meter/domain"
	"github.com/hydrowatch/hydrowatch/internal/validator"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo meterdomain.Repository
}

type Service struct {
	log  *zap.Logger
	repo meterdomain.Repository
}

func New(p Params) meterdomain.Service {
	return &Service{
		log:  p.Log.Named("meter.service"),
		repo: p.Repo,
	}
}

func (s *Service) Register(ctx context.Context, req meterdomain.RegisterRequest) (*meterdomain.WaterMeter, error) {
	meterID := strings.TrimSpace(req.MeterID)
	if !validator.IsValidMeterID(meterID) {
		return nil, meterdomain.ErrInvalidMeterID
	}

	m := &meterdomain.WaterMeter{
		MeterID:   meterID,
		Location:  strings.TrimSpace(req.Location),
		OwnerName: strings.TrimSpace(req.OwnerName),
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}

	s.log.Info("meter registered",
		zap.String("meter_id", m.MeterID),
		zap.String("location", m.Location),
	)
	return m, nil
}

func (s *Service) List(ctx context.Context) []meterdomain.WaterMeter {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, meterID string) (*meterdomain.WaterMeter, error) {
	return s.repo.FindByID(ctx, meterID)
}

// BindMeterToUser reports whether meterID is registered. The userID is
// accepted for interface compatibility with the boundary but no binding is
// stored.
func (s *Service) BindMeterToUser(ctx context.Context, userID, meterID string) bool {
	return s.repo.Exists(ctx, meterID)
}
