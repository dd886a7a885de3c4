// Package domain defines the water-meter entity and its contracts.
package domain

// WaterMeter is a tracked water-consumption device. MeterID is immutable
// after construction; Location and OwnerName may be updated.
type WaterMeter struct {
	MeterID   string `json:"meter_id"`
	Location  string `json:"location"`
	OwnerName string `json:"owner_name"`
}
