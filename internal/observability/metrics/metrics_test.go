package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersIncrement(t *testing.T) {
	m := New(NewRegistry())

	m.ObserveIngest()
	m.ObserveIngest()
	m.ObserveRejection(RejectReasonAmount)
	m.ObserveAlert("HIGH_USAGE")
	m.ObserveReport()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsIngested))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsRejected.WithLabelValues(RejectReasonAmount)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RecordsRejected.WithLabelValues(RejectReasonDate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AlertsRaised.WithLabelValues("HIGH_USAGE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsGenerated))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveIngest()
		m.ObserveRejection(RejectReasonMeterID)
		m.ObserveAlert("LOW_USAGE")
		m.ObserveReport()
	})
}
