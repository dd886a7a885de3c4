package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hydrowatch/hydrowatch/internal/alert"
	"github.com/hydrowatch/hydrowatch/internal/clock"
	"github.com/hydrowatch/hydrowatch/internal/config"
	usagedomain "github.com/hydrowatch/hydrowatch/internal/usage/domain"
	usagerepository "github.com/hydrowatch/hydrowatch/internal/usage/repository"
	usageservice "github.com/hydrowatch/hydrowatch/internal/usage/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestGenerator(t *testing.T) (*Generator, usagedomain.Service) {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{
		AbnormalUsageThreshold: 200,
		DetectorWindowDays:     7,
		ReportWindowDays:       30,
	}
	fake := clock.NewFakeClock(testNow)

	usageSvc := usageservice.NewService(usageservice.ServiceParam{
		Log:     zap.NewNop(),
		Cfg:     cfg,
		Clock:   fake,
		GenID:   node,
		Repo:    usagerepository.Provide(),
		History: alert.NewHistory(),
	})

	gen := NewGenerator(GeneratorParam{
		Log:   zap.NewNop(),
		Cfg:   cfg,
		Clock: fake,
		Usage: usageSvc,
	})
	return gen, usageSvc
}

func TestGenerateRoundTrip(t *testing.T) {
	gen, usageSvc := newTestGenerator(t)
	ctx := context.Background()

	amounts := []float64{10, 20, 30, 40}
	for i, a := range amounts {
		_, err := usageSvc.Ingest(ctx, usagedomain.IngestRequest{
			MeterID: "WM001",
			Date:    testNow.AddDate(0, 0, -i),
			Amount:  a,
		})
		require.NoError(t, err)
	}

	rep, err := gen.Generate(ctx, "WM001", "any-label")
	require.NoError(t, err)

	assert.Equal(t, "Period: any-label | Total: 100.00 liters | Records: 4", rep.Summary())
	assert.Contains(t, rep.Render(), "Total Usage: 100.00 liters")
}

func TestGeneratePeriodIsLabelOnly(t *testing.T) {
	gen, usageSvc := newTestGenerator(t)
	ctx := context.Background()

	// One record inside the 30-day window, one outside it.
	_, err := usageSvc.Ingest(ctx, usagedomain.IngestRequest{
		MeterID: "WM001", Date: testNow.AddDate(0, 0, -5), Amount: 100,
	})
	require.NoError(t, err)
	_, err = usageSvc.Ingest(ctx, usagedomain.IngestRequest{
		MeterID: "WM001", Date: testNow.AddDate(0, 0, -45), Amount: 500,
	})
	require.NoError(t, err)

	// The label names a year-long period; the query still covers only the
	// trailing 30 days.
	rep, err := gen.Generate(ctx, "WM001", "2023-06-15 to 2024-06-15")
	require.NoError(t, err)

	assert.Equal(t, "Period: 2023-06-15 to 2024-06-15 | Total: 100.00 liters | Records: 1", rep.Summary())
}

func TestGenerateEmptyMeter(t *testing.T) {
	gen, _ := newTestGenerator(t)

	rep, err := gen.Generate(context.Background(), "WM002", "2024-01-01 to 2024-01-31")
	require.NoError(t, err)

	assert.Equal(t, "No usage data available for 2024-01-01 to 2024-01-31", rep.Summary())
	assert.Contains(t, rep.Render(), "No usage records found for this period.")
}

func TestGenerateSnapshotSurvivesLaterIngest(t *testing.T) {
	gen, usageSvc := newTestGenerator(t)
	ctx := context.Background()

	_, err := usageSvc.Ingest(ctx, usagedomain.IngestRequest{
		MeterID: "WM001", Date: testNow, Amount: 100,
	})
	require.NoError(t, err)

	rep, err := gen.Generate(ctx, "WM001", "label")
	require.NoError(t, err)
	before := rep.Summary()

	_, err = usageSvc.Ingest(ctx, usagedomain.IngestRequest{
		MeterID: "WM001", Date: testNow, Amount: 500,
	})
	require.NoError(t, err)

	assert.Equal(t, before, rep.Summary(), "report snapshot must not track the live store")
}

func TestReportIDsArePrefixedAndDistinct(t *testing.T) {
	gen, _ := newTestGenerator(t)
	ctx := context.Background()

	a, err := gen.Generate(ctx, "WM001", "label")
	require.NoError(t, err)
	b, err := gen.Generate(ctx, "WM001", "label")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.ReportID(), "RPT"))
	assert.True(t, strings.HasPrefix(b.ReportID(), "RPT"))
	assert.NotEqual(t, a.ReportID(), b.ReportID())
}
