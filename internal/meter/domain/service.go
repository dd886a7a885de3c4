package domain

import (
	"context"
	"errors"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*WaterMeter, error)
	List(ctx context.Context) []WaterMeter
	GetByID(ctx context.Context, meterID string) (*WaterMeter, error)

	// BindMeterToUser is a capability check only: it reports whether meterID
	// is registered. No binding is persisted.
	BindMeterToUser(ctx context.Context, userID, meterID string) bool
}

type RegisterRequest struct {
	MeterID   string `json:"meter_id"`
	Location  string `json:"location"`
	OwnerName string `json:"owner_name"`
}

var (
	ErrInvalidMeterID = errors.New("invalid_meter_id")
	ErrDuplicateMeter = errors.New("duplicate_meter")
	ErrNotFound       = errors.New("not_found")
)
