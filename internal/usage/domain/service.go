package domain

import (
	"context"
	"errors"
	"time"
)

type IngestRequest struct {
	MeterID string    `json:"meter_id"`
	Date    time.Time `json:"date"`
	Amount  float64   `json:"usage_amount"`
}

type Service interface {
	// Ingest validates the request and appends a new record. On any
	// validation failure it returns a sentinel error and leaves the store
	// untouched. On success it re-evaluates abnormal usage for the meter.
	Ingest(ctx context.Context, req IngestRequest) (*UsageRecord, error)

	// History returns a fresh copy of the meter's records with dates inside
	// [start, end] inclusive, sorted ascending by date (insertion order for
	// ties).
	History(ctx context.Context, meterID string, start, end time.Time) []UsageRecord

	// CheckForAbnormalUsage evaluates the meter's trailing window and raises
	// a HIGH_USAGE alert when the average exceeds the configured threshold.
	CheckForAbnormalUsage(ctx context.Context, meterID string) bool

	// All returns a snapshot of every record in arrival order.
	All(ctx context.Context) []UsageRecord
}

var (
	ErrInvalidMeterID = errors.New("invalid_meter_id")
	ErrInvalidAmount  = errors.New("invalid_usage_amount")
	ErrInvalidDate    = errors.New("invalid_date")
)
