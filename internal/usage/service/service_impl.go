package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hydrowatch/hydrowatch/internal/alert"
	alertdomain "github.com/hydrowatch/hydrowatch/internal/alert/domain"
	"github.com/hydrowatch/hydrowatch/internal/clock"
	"github.com/hydrowatch/hydrowatch/internal/config"
	obsmetrics "github.com/hydrowatch/hydrowatch/internal/observability/metrics"
	usagedomain "github.com/hydrowatch/hydrowatch/internal/usage/domain"
	"github.com/hydrowatch/hydrowatch/internal/validator"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log     *zap.Logger
	Cfg     config.Config
	Clock   clock.Clock
	GenID   *snowflake.Node
	Repo    usagedomain.Repository
	History *alert.History
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	cfg     config.Config
	clock   clock.Clock
	genID   *snowflake.Node
	repo    usagedomain.Repository
	history *alert.History
	metrics *obsmetrics.Metrics
}

func NewService(p ServiceParam) usagedomain.Service {
	return &Service{
		log:     p.Log.Named("usage.service"),
		cfg:     p.Cfg,
		clock:   p.Clock,
		genID:   p.GenID,
		repo:    p.Repo,
		history: p.History,
		metrics: p.Metrics,
	}
}

// Ingest gates the request through all three validators before anything is
// written. A rejected request leaves the store untouched.
func (s *Service) Ingest(ctx context.Context, req usagedomain.IngestRequest) (*usagedomain.UsageRecord, error) {
	if !validator.IsValidMeterID(req.MeterID) {
		s.metrics.ObserveRejection(obsmetrics.RejectReasonMeterID)
		return nil, usagedomain.ErrInvalidMeterID
	}
	if !validator.IsValidUsageAmount(req.Amount) {
		s.metrics.ObserveRejection(obsmetrics.RejectReasonAmount)
		return nil, usagedomain.ErrInvalidAmount
	}
	if !validator.IsValidDate(req.Date, s.clock.Now()) {
		s.metrics.ObserveRejection(obsmetrics.RejectReasonDate)
		return nil, usagedomain.ErrInvalidDate
	}

	record := &usagedomain.UsageRecord{
		RecordID: s.genID.Generate(),
		MeterID:  req.MeterID,
		Date:     clock.DateOf(req.Date),
		Amount:   req.Amount,
	}

	if err := s.repo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("append usage record: %w", err)
	}

	s.metrics.ObserveIngest()
	s.log.Info("usage record added",
		zap.Int64("record_id", int64(record.RecordID)),
		zap.String("meter_id", record.MeterID),
		zap.Float64("usage_amount", record.Amount),
	)

	s.CheckForAbnormalUsage(ctx, record.MeterID)
	return record, nil
}

func (s *Service) History(ctx context.Context, meterID string, start, end time.Time) []usagedomain.UsageRecord {
	return s.repo.History(ctx, meterID, start, end)
}

func (s *Service) All(ctx context.Context) []usagedomain.UsageRecord {
	return s.repo.All(ctx)
}

// CheckForAbnormalUsage loads the meter's trailing window and raises a
// HIGH_USAGE alert when the average exceeds the configured threshold. Fewer
// than two records in the window is treated as no abnormality.
//
// The average divides by the number of records found, not the window length.
// That conflates records-in-window with days-in-window, but it is the
// established detector behavior and consumers calibrate thresholds against
// it.
func (s *Service) CheckForAbnormalUsage(ctx context.Context, meterID string) bool {
	today := clock.Today(s.clock)
	start := today.AddDate(0, 0, -s.cfg.DetectorWindowDays)

	recent := s.repo.History(ctx, meterID, start, today)
	if len(recent) < 2 {
		return false
	}

	var total float64
	for _, rec := range recent {
		total += rec.Amount
	}
	averageDaily := total / float64(len(recent))

	if averageDaily <= s.cfg.AbnormalUsageThreshold {
		return false
	}

	a := alertdomain.Alert{
		AlertID: s.genID.Generate(),
		MeterID: meterID,
		Type:    alertdomain.AlertTypeHighUsage,
		Message: fmt.Sprintf("High water usage detected: %.2f L/day average", averageDaily),
		Date:    today,
	}
	s.history.Append(a)

	s.metrics.ObserveAlert(string(a.Type))
	s.log.Warn("abnormal usage detected",
		zap.String("meter_id", meterID),
		zap.Float64("average_daily", averageDaily),
		zap.Float64("threshold", s.cfg.AbnormalUsageThreshold),
	)
	return true
}
