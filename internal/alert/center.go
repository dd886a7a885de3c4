// Package alert provides the process-wide abnormal-usage alert log. The
// Center is constructed once and handed to collaborators through fx rather
// than living in package-level state.
package alert

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	alertdomain "github.com/hydrowatch/hydrowatch/internal/alert/domain"
	"github.com/hydrowatch/hydrowatch/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// UnknownMeterID stands in for an absent meter ID on recorded alerts.
const UnknownMeterID = "UNKNOWN"

// timestampLayout renders alert timestamps to the minute.
const timestampLayout = "2006-01-02 15:04"

// NoAlertsMessage is returned by Format when the log is empty.
const NoAlertsMessage = "No abnormal usage alerts currently."

type CenterParams struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
}

// Center is an append-only alert log, safe for concurrent append, read and
// clear. Reads hand out snapshots so formatting never holds the lock.
type Center struct {
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node

	mu     sync.Mutex
	alerts []alertdomain.Alert
}

func NewCenter(p CenterParams) *Center {
	return &Center{
		log:   p.Log.Named("alert.center"),
		clock: p.Clock,
		genID: p.GenID,
	}
}

// AddHighUsage records a HIGH_USAGE alert for the given meter. An empty
// meterID is recorded as UNKNOWN rather than rejected.
func (c *Center) AddHighUsage(meterID string, usage, threshold float64) {
	now := c.clock.Now()
	msg := fmt.Sprintf("Today's usage %.1f L exceeds threshold %.1f L at %s",
		usage, threshold, now.Format(timestampLayout))
	c.append(meterID, alertdomain.AlertTypeHighUsage, msg)
}

// AddLowUsage records a LOW_USAGE alert for the given meter. An empty
// meterID is recorded as UNKNOWN rather than rejected.
func (c *Center) AddLowUsage(meterID string, usage, threshold float64) {
	now := c.clock.Now()
	msg := fmt.Sprintf("Today's usage %.1f L is below threshold %.1f L at %s",
		usage, threshold, now.Format(timestampLayout))
	c.append(meterID, alertdomain.AlertTypeLowUsage, msg)
}

func (c *Center) append(meterID string, alertType alertdomain.AlertType, msg string) {
	if meterID == "" {
		meterID = UnknownMeterID
	}

	a := alertdomain.Alert{
		AlertID: c.genID.Generate(),
		MeterID: meterID,
		Type:    alertType,
		Message: msg,
		Date:    clock.Today(c.clock),
	}

	c.mu.Lock()
	c.alerts = append(c.alerts, a)
	c.mu.Unlock()

	c.log.Warn("abnormal usage alert recorded",
		zap.Int64("alert_id", int64(a.AlertID)),
		zap.String("meter_id", a.MeterID),
		zap.String("alert_type", string(a.Type)),
	)
}

// Alerts returns an independent snapshot in insertion order. Mutating the
// result never affects the internal log.
func (c *Center) Alerts() []alertdomain.Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]alertdomain.Alert, len(c.alerts))
	copy(out, c.alerts)
	return out
}

// Format renders all alerts one per line, or NoAlertsMessage when the log is
// empty. The snapshot is taken under the lock; formatting happens outside it.
func (c *Center) Format() string {
	alerts := c.Alerts()
	if len(alerts) == 0 {
		return NoAlertsMessage
	}

	var sb strings.Builder
	for _, a := range alerts {
		sb.WriteString(a.Details())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Clear empties the log. Previously returned snapshots are unaffected.
func (c *Center) Clear() {
	c.mu.Lock()
	c.alerts = nil
	c.mu.Unlock()
}
