package service

import (
	"context"

	"github.com/hydrowatch/hydrowatch/internal/clock"
	"github.com/hydrowatch/hydrowatch/internal/config"
	obsmetrics "github.com/hydrowatch/hydrowatch/internal/observability/metrics"
	reportdomain "github.com/hydrowatch/hydrowatch/internal/report/domain"
	usagedomain "github.com/hydrowatch/hydrowatch/internal/usage/domain"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type GeneratorParam struct {
	fx.In

	Log     *zap.Logger
	Cfg     config.Config
	Clock   clock.Clock
	Usage   usagedomain.Service
	Metrics *obsmetrics.Metrics `optional:"true"`
}

// Generator produces usage reports over the fixed trailing report window.
type Generator struct {
	log     *zap.Logger
	cfg     config.Config
	clock   clock.Clock
	usage   usagedomain.Service
	metrics *obsmetrics.Metrics
}

func NewGenerator(p GeneratorParam) *Generator {
	return &Generator{
		log:     p.Log.Named("report.generator"),
		cfg:     p.Cfg,
		clock:   p.Clock,
		usage:   p.Usage,
		metrics: p.Metrics,
	}
}

// Generate snapshots the meter's trailing 30-day usage into a report. The
// period argument is carried through as a display label only; the query
// window is always [today - ReportWindowDays, today].
func (g *Generator) Generate(ctx context.Context, meterID, period string) (reportdomain.Report, error) {
	today := clock.Today(g.clock)
	start := today.AddDate(0, 0, -g.cfg.ReportWindowDays)

	records := g.usage.History(ctx, meterID, start, today)

	reportID := "RPT" + ulid.Make().String()
	rep := reportdomain.NewUsageReport(reportID, meterID, period, today, records)

	g.metrics.ObserveReport()
	g.log.Info("usage report generated",
		zap.String("report_id", reportID),
		zap.String("meter_id", meterID),
		zap.Int("records", len(records)),
	)
	return rep, nil
}
