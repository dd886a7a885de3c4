package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Repository is the append-only usage-record store. Records are never
// deleted; insertion order is arrival order, not date order.
type Repository interface {
	Append(ctx context.Context, record *UsageRecord) error
	History(ctx context.Context, meterID string, start, end time.Time) []UsageRecord
	All(ctx context.Context) []UsageRecord
	Count(ctx context.Context) int

	// Correct updates the mutable fields of an existing record. RecordID and
	// MeterID are never reassigned.
	Correct(ctx context.Context, recordID snowflake.ID, date time.Time, amount float64) error
}
