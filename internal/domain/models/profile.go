package models

import (
	"time"

	"fletapp/internal/domain"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleDriver   UserRole = "driver"
)

func ValidRole(r UserRole) bool {
	return r == RoleCustomer || r == RoleDriver
}

// Profile is one person on the platform. Role is immutable after
// registration; the vehicle/capacity block is populated only for drivers.
type Profile struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	DNI      string   `json:"dni"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
	Role     UserRole `json:"role"`

	Vehicle         *string             `json:"vehicle,omitempty"`
	VehicleType     *domain.VehicleType `json:"vehicle_type,omitempty"`
	CapacityKg      *float64            `json:"capacity_kg,omitempty"`
	CapacityM3      *float64            `json:"capacity_m3,omitempty"`
	ServiceRadiusKm *float64            `json:"service_radius_km,omitempty"`
	PhotoURL        *string             `json:"photo_url,omitempty"`
	PaymentInfo     *string             `json:"payment_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Capacity narrows the profile to its driver view. ok is false for
// customers and for drivers whose vehicle block is incomplete; such drivers
// see no trips at all.
func (p Profile) Capacity() (domain.DriverCapacity, bool) {
	if p.Role != RoleDriver {
		return domain.DriverCapacity{}, false
	}
	if p.VehicleType == nil || p.CapacityKg == nil || p.CapacityM3 == nil {
		return domain.DriverCapacity{}, false
	}
	return domain.DriverCapacity{
		VehicleType: *p.VehicleType,
		CapacityKg:  *p.CapacityKg,
		CapacityM3:  *p.CapacityM3,
	}, true
}
