// Package domain defines abnormal-usage alerts.
package domain

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// AlertType categorizes an alert.
type AlertType string

const (
	AlertTypeHighUsage AlertType = "HIGH_USAGE"
	AlertTypeLowUsage  AlertType = "LOW_USAGE"
)

// Alert is a raised notice that a measurement or aggregate crossed a
// threshold. Alerts are immutable once created.
type Alert struct {
	AlertID snowflake.ID `json:"alert_id"`
	MeterID string       `json:"meter_id"`
	Type    AlertType    `json:"alert_type"`
	Message string       `json:"alert_message"`
	Date    time.Time    `json:"alert_date"`
}

// Details renders the one-line form used by alert listings:
//
//	Alert[<id>]: <type> - <message> (<meterID>) on <date>
func (a Alert) Details() string {
	return fmt.Sprintf("Alert[%d]: %s - %s (%s) on %s",
		a.AlertID, a.Type, a.Message, a.MeterID, a.Date.Format("2006-01-02"))
}
