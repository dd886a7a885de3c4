package domain

import "context"

type Repository interface {
	Insert(ctx context.Context, meter *WaterMeter) error
	FindByID(ctx context.Context, meterID string) (*WaterMeter, error)
	Exists(ctx context.Context, meterID string) bool
	List(ctx context.Context) []WaterMeter
	UpdateLocation(ctx context.Context, meterID, location string) error
	UpdateOwner(ctx context.Context, meterID, ownerName string) error
}
