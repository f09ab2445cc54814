package models

import (
	"time"

	"fletapp/internal/domain"
)

// Trip is one transport job from request to payment.
type Trip struct {
	ID           int64   `json:"id"`
	CustomerID   string  `json:"customer_id"`
	DriverID     *string `json:"driver_id"`
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	CargoDetails string  `json:"cargo_details"`

	EstimatedWeightKg float64  `json:"estimated_weight_kg"`
	EstimatedVolumeM3 float64  `json:"estimated_volume_m3"`
	DistanceKm        *float64 `json:"distance_km"`

	EstimatedDriveTimeMin  *int `json:"estimated_drive_time_min"`
	EstimatedLoadTimeMin   *int `json:"estimated_load_time_min"`
	EstimatedUnloadTimeMin *int `json:"estimated_unload_time_min"`
	DriverArrivalTimeMin   *int `json:"driver_arrival_time_min"`

	Price  *int64            `json:"price"`
	Status domain.TripStatus `json:"status"`

	SuitableVehicleTypes []domain.VehicleType `json:"suitable_vehicle_types"`

	StartTime        *time.Time `json:"start_time"`
	FinalDurationMin *int       `json:"final_duration_min"`
	FinalPrice       *int64     `json:"final_price"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Requirements extracts the matching-relevant view of the trip.
func (t Trip) Requirements() domain.TripRequirements {
	return domain.TripRequirements{
		WeightKg:             t.EstimatedWeightKg,
		VolumeM3:             t.EstimatedVolumeM3,
		SuitableVehicleTypes: t.SuitableVehicleTypes,
	}
}

// IsParticipant reports whether userID is the customer or assigned driver.
func (t Trip) IsParticipant(userID string) bool {
	if t.CustomerID == userID {
		return true
	}
	return t.DriverID != nil && *t.DriverID == userID
}
