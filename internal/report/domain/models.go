// Package domain defines the report capability and its usage-report variant.
package domain

import (
	"fmt"
	"strings"
	"time"

	usagedomain "github.com/hydrowatch/hydrowatch/internal/usage/domain"
)

// Report is a derived, immutable textual artifact. Both renderings come
// purely from the report's own state; nothing is recomputed from a live
// store.
type Report interface {
	// Render returns the full multi-section textual artifact.
	Render() string
	// Summary returns one concise line.
	Summary() string

	ReportID() string
	MeterID() string
	GeneratedDate() time.Time
}

// UsageReport renders a meter's usage records for a period. The record slice
// is snapshotted at construction and never reflects later store mutations.
// The period is a display label only; it played no part in selecting the
// records.
type UsageReport struct {
	reportID  string
	meterID   string
	period    string
	generated time.Time
	records   []usagedomain.UsageRecord
}

func NewUsageReport(reportID, meterID, period string, generated time.Time, records []usagedomain.UsageRecord) *UsageReport {
	snapshot := make([]usagedomain.UsageRecord, len(records))
	copy(snapshot, records)
	return &UsageReport{
		reportID:  reportID,
		meterID:   meterID,
		period:    period,
		generated: generated,
		records:   snapshot,
	}
}

func (r *UsageReport) ReportID() string         { return r.reportID }
func (r *UsageReport) MeterID() string          { return r.meterID }
func (r *UsageReport) GeneratedDate() time.Time { return r.generated }
func (r *UsageReport) Period() string           { return r.period }

// Records returns a copy of the snapshot.
func (r *UsageReport) Records() []usagedomain.UsageRecord {
	out := make([]usagedomain.UsageRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Render emits the full report: header block, metadata, then either a
// no-data notice or the records table with total and average-daily usage.
// Average daily divides by the record count, matching the detector's
// convention.
func (r *UsageReport) Render() string {
	var b strings.Builder
	b.WriteString("=====================================\n")
	b.WriteString("        WATER USAGE REPORT\n")
	b.WriteString("=====================================\n\n")

	b.WriteString("Report ID: " + r.reportID + "\n")
	b.WriteString("Meter ID: " + r.meterID + "\n")
	b.WriteString("Period: " + r.period + "\n")
	b.WriteString("Generated: " + r.generated.Format("2006-01-02") + "\n\n")

	if len(r.records) == 0 {
		b.WriteString("No usage records found for this period.\n")
	} else {
		var total float64
		b.WriteString("USAGE RECORDS:\n")
		b.WriteString("Date          Usage (Liters)\n")
		b.WriteString("-------------------------\n")

		for _, rec := range r.records {
			b.WriteString(fmt.Sprintf("%-12s  %8.2f\n",
				rec.Date.Format("2006-01-02"), rec.Amount))
			total += rec.Amount
		}

		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Total Usage: %.2f liters\n", total))
		b.WriteString(fmt.Sprintf("Average Daily: %.2f liters\n", total/float64(len(r.records))))
	}

	b.WriteString("=====================================")
	return b.String()
}

// Summary returns the one-line form used by dashboards and list views.
func (r *UsageReport) Summary() string {
	if len(r.records) == 0 {
		return "No usage data available for " + r.period
	}

	var total float64
	for _, rec := range r.records {
		total += rec.Amount
	}
	return fmt.Sprintf("Period: %s | Total: %.2f liters | Records: %d",
		r.period, total, len(r.records))
}
