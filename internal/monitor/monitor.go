// Package monitor is the orchestration facade over the meter, usage, alert
// and report collaborators. It exposes the boundary operations that screens
// and CLI front-ends call.
package monitor

import (
	"context"
	"time"

	"github.com/hydrowatch/hydrowatch/internal/alert"
	alertdomain "github.com/hydrowatch/hydrowatch/internal/alert/domain"
	"github.com/hydrowatch/hydrowatch/internal/clock"
	"github.com/hydrowatch/hydrowatch/internal/config"
	meterdomain "github.com/hydrowatch/hydrowatch/internal/meter/domain"
	reportdomain "github.com/hydrowatch/hydrowatch/internal/report/domain"
	reportservice "github.com/hydrowatch/hydrowatch/internal/report/service"
	usagedomain "github.com/hydrowatch/hydrowatch/internal/usage/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Cfg     config.Config
	Clock   clock.Clock
	Meters  meterdomain.Service
	Usage   usagedomain.Service
	Reports *reportservice.Generator
	Center  *alert.Center
	History *alert.History
}

// Monitor coordinates meter operations, usage tracking and alert generation.
// It keeps its own alert history (via History), independent of the
// UI-facing Center.
type Monitor struct {
	log     *zap.Logger
	cfg     config.Config
	clock   clock.Clock
	meters  meterdomain.Service
	usage   usagedomain.Service
	reports *reportservice.Generator
	center  *alert.Center
	history *alert.History
}

func New(p Params) *Monitor {
	return &Monitor{
		log:     p.Log.Named("monitor"),
		cfg:     p.Cfg,
		clock:   p.Clock,
		meters:  p.Meters,
		usage:   p.Usage,
		reports: p.Reports,
		center:  p.Center,
		history: p.History,
	}
}

// AddUsageRecord validates and stores one usage observation, then
// re-evaluates abnormal usage for the meter. A validation failure returns
// the matching sentinel error and changes nothing.
func (m *Monitor) AddUsageRecord(ctx context.Context, meterID string, date time.Time, amount float64) error {
	_, err := m.usage.Ingest(ctx, usagedomain.IngestRequest{
		MeterID: meterID,
		Date:    date,
		Amount:  amount,
	})
	return err
}

// RecordDailyUsage stores today's reading and raises center alerts when it
// crosses the configured daily thresholds.
func (m *Monitor) RecordDailyUsage(ctx context.Context, meterID string, usage float64) error {
	now := m.clock.Now()
	if _, err := m.usage.Ingest(ctx, usagedomain.IngestRequest{
		MeterID: meterID,
		Date:    now,
		Amount:  usage,
	}); err != nil {
		return err
	}

	switch {
	case usage > m.cfg.HighUsageThreshold:
		m.center.AddHighUsage(meterID, usage, m.cfg.HighUsageThreshold)
	case usage < m.cfg.LowUsageThreshold:
		m.center.AddLowUsage(meterID, usage, m.cfg.LowUsageThreshold)
	}
	return nil
}

// CheckForAbnormalUsage reports whether the meter's trailing average crossed
// the abnormal-usage threshold, raising a HIGH_USAGE alert when it did.
func (m *Monitor) CheckForAbnormalUsage(ctx context.Context, meterID string) bool {
	return m.usage.CheckForAbnormalUsage(ctx, meterID)
}

// GenerateReport produces a usage report for the fixed trailing report
// window. The period argument is a display label, not a query parameter.
func (m *Monitor) GenerateReport(ctx context.Context, meterID, period string) (reportdomain.Report, error) {
	return m.reports.Generate(ctx, meterID, period)
}

// GetUsageHistory returns the meter's records within [start, end] inclusive,
// sorted ascending by date, as a fresh copy.
func (m *Monitor) GetUsageHistory(ctx context.Context, meterID string, start, end time.Time) []usagedomain.UsageRecord {
	return m.usage.History(ctx, meterID, start, end)
}

// BindMeterToUser reports whether the meter exists. No binding is persisted.
func (m *Monitor) BindMeterToUser(ctx context.Context, userID, meterID string) bool {
	return m.meters.BindMeterToUser(ctx, userID, meterID)
}

// Meters returns a snapshot of the registered meters.
func (m *Monitor) Meters(ctx context.Context) []meterdomain.WaterMeter {
	return m.meters.List(ctx)
}

// UsageRecords returns a snapshot of every record in arrival order.
func (m *Monitor) UsageRecords(ctx context.Context) []usagedomain.UsageRecord {
	return m.usage.All(ctx)
}

// Alerts returns a snapshot of the monitor's own alert history.
func (m *Monitor) Alerts() []alertdomain.Alert {
	return m.history.Snapshot()
}
