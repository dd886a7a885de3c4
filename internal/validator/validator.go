// Package validator contains stateless format and range checks for
// water-meter inputs. All functions are pure and safe for concurrent use.
//
// The checks validate shape and range only; they do not verify that a meter
// actually exists in the meter store.
package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/hydrowatch/hydrowatch/internal/clock"
)

const (
	// MaxDailyUsageLiters bounds a single reading to a reasonable daily range.
	MaxDailyUsageLiters = 10000
)

// meterIDPattern is WM followed by exactly three digits, e.g. WM001.
// Case-sensitive: the access gate's whitelist is looser on purpose, this
// check is not.
var meterIDPattern = regexp.MustCompile(`^WM\d{3}$`)

// IsValidMeterID reports whether id is non-blank and matches the WM### shape.
func IsValidMeterID(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	return meterIDPattern.MatchString(id)
}

// IsValidUsageAmount reports whether amount falls within [0, 10000] liters,
// inclusive on both ends.
func IsValidUsageAmount(amount float64) bool {
	return amount >= 0 && amount <= MaxDailyUsageLiters
}

// IsValidDate reports whether date lies within the inclusive window
// [now - 1 year, now], compared at calendar-date granularity. The zero time
// is rejected. Callers pass the injected clock's current time as now.
func IsValidDate(date time.Time, now time.Time) bool {
	if date.IsZero() {
		return false
	}

	day := clock.DateOf(date)
	today := clock.DateOf(now)
	oneYearAgo := today.AddDate(-1, 0, 0)

	return !day.After(today) && !day.Before(oneYearAgo)
}
