// Package metrics captures monitor health signals as in-process prometheus
// counters. There is no exposition endpoint; the counters are read directly
// (tests use prometheus/testutil).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const (
	RejectReasonMeterID = "meter_id"
	RejectReasonAmount  = "amount"
	RejectReasonDate    = "date"
)

var Module = fx.Module("observability.metrics",
	fx.Provide(NewRegistry),
	fx.Provide(New),
)

func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Metrics holds the monitor's counters.
type Metrics struct {
	RecordsIngested  prometheus.Counter
	RecordsRejected  *prometheus.CounterVec
	AlertsRaised     *prometheus.CounterVec
	ReportsGenerated prometheus.Counter
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		RecordsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hydrowatch_records_ingested_total",
			Help: "Usage records accepted by the ingestion path.",
		}),
		RecordsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hydrowatch_records_rejected_total",
			Help: "Usage records rejected by validation, by reason.",
		}, []string{"reason"}),
		AlertsRaised: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hydrowatch_alerts_raised_total",
			Help: "Alerts raised, by alert type.",
		}, []string{"alert_type"}),
		ReportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hydrowatch_reports_generated_total",
			Help: "Usage reports generated.",
		}),
	}

	reg.MustRegister(
		m.RecordsIngested,
		m.RecordsRejected,
		m.AlertsRaised,
		m.ReportsGenerated,
	)
	return m
}

// ObserveRejection increments the rejection counter for the given reason.
func (m *Metrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.RecordsRejected.WithLabelValues(reason).Inc()
}

// ObserveIngest increments the accepted-record counter.
func (m *Metrics) ObserveIngest() {
	if m == nil {
		return
	}
	m.RecordsIngested.Inc()
}

// ObserveAlert increments the alert counter for the given type.
func (m *Metrics) ObserveAlert(alertType string) {
	if m == nil {
		return
	}
	m.AlertsRaised.WithLabelValues(alertType).Inc()
}

// ObserveReport increments the report counter.
func (m *Metrics) ObserveReport() {
	if m == nil {
		return
	}
	m.ReportsGenerated.Inc()
}
