package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hydrowatch/hydrowatch/internal/alert"
	alertdomain "github.com/hydrowatch/hydrowatch/internal/alert/domain"
	"github.com/hydrowatch/hydrowatch/internal/clock"
	"github.com/hydrowatch/hydrowatch/internal/config"
	meterrepository "github.com/hydrowatch/hydrowatch/internal/meter/repository"
	meterservice "github.com/hydrowatch/hydrowatch/internal/meter/service"
	reportservice "github.com/hydrowatch/hydrowatch/internal/report/service"
	"github.com/hydrowatch/hydrowatch/internal/seed"
	usagedomain "github.com/hydrowatch/hydrowatch/internal/usage/domain"
	usagerepository "github.com/hydrowatch/hydrowatch/internal/usage/repository"
	usageservice "github.com/hydrowatch/hydrowatch/internal/usage/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestMonitor(t *testing.T) (*Monitor, *alert.Center, *clock.FakeClock) {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{
		HighUsageThreshold:     180,
		LowUsageThreshold:      50,
		AbnormalUsageThreshold: 200,
		DetectorWindowDays:     7,
		ReportWindowDays:       30,
		SeedMeters:             true,
	}
	fake := clock.NewFakeClock(testNow)
	logger := zap.NewNop()
	history := alert.NewHistory()

	meterSvc := meterservice.New(meterservice.Params{
		Log:  logger,
		Repo: meterrepository.Provide(),
	})
	require.NoError(t, seed.EnsureDefaultMeters(cfg, logger, meterSvc))

	usageSvc := usageservice.NewService(usageservice.ServiceParam{
		Log:     logger,
		Cfg:     cfg,
		Clock:   fake,
		GenID:   node,
		Repo:    usagerepository.Provide(),
		History: history,
	})

	gen := reportservice.NewGenerator(reportservice.GeneratorParam{
		Log:   logger,
		Cfg:   cfg,
		Clock: fake,
		Usage: usageSvc,
	})

	center := alert.NewCenter(alert.CenterParams{
		Log:   logger,
		Clock: fake,
		GenID: node,
	})

	m := New(Params{
		Log:     logger,
		Cfg:     cfg,
		Clock:   fake,
		Meters:  meterSvc,
		Usage:   usageSvc,
		Reports: gen,
		Center:  center,
		History: history,
	})
	return m, center, fake
}

func TestSeededMeters(t *testing.T) {
	m, _, _ := newTestMonitor(t)

	meters := m.Meters(context.Background())
	require.Len(t, meters, 3)
	assert.Equal(t, "WM001", meters[0].MeterID)
	assert.Equal(t, "Building A", meters[0].Location)
}

func TestAddUsageRecordAndHistory(t *testing.T) {
	m, _, _ := newTestMonitor(t)
	ctx := context.Background()

	require.NoError(t, m.AddUsageRecord(ctx, "WM001", testNow.AddDate(0, 0, -1), 120))
	require.NoError(t, m.AddUsageRecord(ctx, "WM001", testNow, 80))

	got := m.GetUsageHistory(ctx, "WM001", testNow.AddDate(0, 0, -7), testNow)
	require.Len(t, got, 2)
	assert.Equal(t, 120.0, got[0].Amount)
	assert.Equal(t, 80.0, got[1].Amount)
}

func TestAddUsageRecordRejectionIsANoOp(t *testing.T) {
	m, _, _ := newTestMonitor(t)
	ctx := context.Background()

	err := m.AddUsageRecord(ctx, "WM001", testNow, -5)
	assert.ErrorIs(t, err, usagedomain.ErrInvalidAmount)
	assert.Empty(t, m.UsageRecords(ctx))
	assert.Empty(t, m.Alerts())
}

func TestCheckForAbnormalUsageThroughFacade(t *testing.T) {
	m, _, _ := newTestMonitor(t)
	ctx := context.Background()

	require.NoError(t, m.AddUsageRecord(ctx, "WM001", testNow.AddDate(0, 0, -1), 260))
	require.NoError(t, m.AddUsageRecord(ctx, "WM001", testNow, 260))

	assert.True(t, m.CheckForAbnormalUsage(ctx, "WM001"))
	require.NotEmpty(t, m.Alerts())
	assert.Equal(t, alertdomain.AlertTypeHighUsage, m.Alerts()[0].Type)
}

func TestRecordDailyUsageThresholds(t *testing.T) {
	m, center, _ := newTestMonitor(t)
	ctx := context.Background()

	require.NoError(t, m.RecordDailyUsage(ctx, "WM001", 250))
	require.NoError(t, m.RecordDailyUsage(ctx, "WM002", 30))
	require.NoError(t, m.RecordDailyUsage(ctx, "WM003", 100))

	alerts := center.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, alertdomain.AlertTypeHighUsage, alerts[0].Type)
	assert.Equal(t, "WM001", alerts[0].MeterID)
	assert.Equal(t, alertdomain.AlertTypeLowUsage, alerts[1].Type)
	assert.Equal(t, "WM002", alerts[1].MeterID)
}

func TestGenerateReportRoundTrip(t *testing.T) {
	m, _, _ := newTestMonitor(t)
	ctx := context.Background()

	amounts := []float64{11, 22, 33}
	for i, a := range amounts {
		require.NoError(t, m.AddUsageRecord(ctx, "WM001", testNow.AddDate(0, 0, -(i+1)), a))
	}

	rep, err := m.GenerateReport(ctx, "WM001", "any-label")
	require.NoError(t, err)
	assert.Equal(t, "Period: any-label | Total: 66.00 liters | Records: 3", rep.Summary())
}

func TestBindMeterToUser(t *testing.T) {
	m, _, _ := newTestMonitor(t)
	ctx := context.Background()

	assert.True(t, m.BindMeterToUser(ctx, "user-1", "WM002"))
	assert.False(t, m.BindMeterToUser(ctx, "user-1", "WM404"))
}
