// Package domain contains the usage-record entity and service contracts for
// raw usage ingestion.
package domain

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// UsageRecord stores a single dated liters-measurement for a meter.
// RecordID and MeterID are fixed for the life of the record; Date and Amount
// may be corrected after creation through the store.
type UsageRecord struct {
	RecordID snowflake.ID `json:"record_id"`
	MeterID  string       `json:"meter_id"`
	Date     time.Time    `json:"date"`
	Amount   float64      `json:"usage_amount"`
}

func (r UsageRecord) String() string {
	return fmt.Sprintf("Record[%d]: %s - %.2f liters on %s",
		r.RecordID, r.MeterID, r.Amount, r.Date.Format("2006-01-02"))
}
