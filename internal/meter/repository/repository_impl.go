// Package repository holds the in-memory meter store. State lives for the
// process lifetime only; every read hands out copies so callers never share
// the backing slice with writers.
package repository

import (
	"context"
	"sync"

	meterdomain "github.com/hydrowatch/hydrowatch/internal/meter/domain"
)

type repo struct {
	mu     sync.RWMutex
	meters []meterdomain.WaterMeter
	byID   map[string]int
}

func Provide() meterdomain.Repository {
	return &repo{byID: make(map[string]int)}
}

func (r *repo) Insert(ctx context.Context, m *meterdomain.WaterMeter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[m.MeterID]; ok {
		return meterdomain.ErrDuplicateMeter
	}
	r.byID[m.MeterID] = len(r.meters)
	r.meters = append(r.meters, *m)
	return nil
}

func (r *repo) FindByID(ctx context.Context, meterID string) (*meterdomain.WaterMeter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[meterID]
	if !ok {
		return nil, meterdomain.ErrNotFound
	}
	m := r.meters[idx]
	return &m, nil
}

func (r *repo) Exists(ctx context.Context, meterID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[meterID]
	return ok
}

// List returns a snapshot in registration order.
func (r *repo) List(ctx context.Context) []meterdomain.WaterMeter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]meterdomain.WaterMeter, len(r.meters))
	copy(out, r.meters)
	return out
}

func (r *repo) UpdateLocation(ctx context.Context, meterID, location string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[meterID]
	if !ok {
		return meterdomain.ErrNotFound
	}
	r.meters[idx].Location = location
	return nil
}

func (r *repo) UpdateOwner(ctx context.Context, meterID, ownerName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[meterID]
	if !ok {
		return meterdomain.ErrNotFound
	}
	r.meters[idx].OwnerName = ownerName
	return nil
}
