package domain

// DriverCapacity carries the driver-only fields needed by eligibility
// matching. Building one (see models.Profile.Capacity) proves the profile is
// a fully configured driver, so the filter itself does no null-checking.
type DriverCapacity struct {
	VehicleType VehicleType
	CapacityKg  float64
	CapacityM3  float64
}

// TripRequirements is the matching-relevant slice of a trip.
type TripRequirements struct {
	WeightKg float64
	VolumeM3 float64
	// Empty means every category is eligible (rows that predate the
	// vehicle-type classifier).
	SuitableVehicleTypes []VehicleType
}

// EligibleForTrip reports whether a driver may see and accept a trip:
// the cargo fits the vehicle and the vehicle category is in the trip's
// suitable set (or the set is empty).
func EligibleForTrip(d DriverCapacity, t TripRequirements) bool {
	if t.WeightKg > d.CapacityKg || t.VolumeM3 > d.CapacityM3 {
		return false
	}
	if len(t.SuitableVehicleTypes) == 0 {
		return true
	}
	for _, v := range t.SuitableVehicleTypes {
		if v == d.VehicleType {
			return true
		}
	}
	return false
}
