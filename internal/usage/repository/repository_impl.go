// Package repository holds the in-memory usage-record store. The backing
// slice is append-only and guarded by a mutex; history queries copy under the
// lock and sort the copy after releasing it.
package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hydrowatch/hydrowatch/internal/clock"
	usagedomain "github.com/hydrowatch/hydrowatch/internal/usage/domain"
)

var errRecordNotFound = errors.New("record_not_found")

type repo struct {
	mu      sync.RWMutex
	records []usagedomain.UsageRecord
}

func Provide() usagedomain.Repository {
	return &repo{}
}

func (r *repo) Append(ctx context.Context, record *usagedomain.UsageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *record)
	return nil
}

// History filters to the meter and the inclusive date window, then sorts the
// copy ascending by date. sort.SliceStable keeps arrival order for same-date
// records.
func (r *repo) History(ctx context.Context, meterID string, start, end time.Time) []usagedomain.UsageRecord {
	startDay := clock.DateOf(start)
	endDay := clock.DateOf(end)

	r.mu.RLock()
	matched := make([]usagedomain.UsageRecord, 0)
	for _, rec := range r.records {
		if rec.MeterID != meterID {
			continue
		}
		day := clock.DateOf(rec.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		matched = append(matched, rec)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})
	return matched
}

// All returns a snapshot in arrival order.
func (r *repo) All(ctx context.Context) []usagedomain.UsageRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]usagedomain.UsageRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *repo) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records)
}

func (r *repo) Correct(ctx context.Context, recordID snowflake.ID, date time.Time, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].RecordID == recordID {
			r.records[i].Date = clock.DateOf(date)
			r.records[i].Amount = amount
			return nil
		}
	}
	return errRecordNotFound
}
