package domain

import "strings"

// VehicleType is the fixed fleet category enumeration. The values are the
// product's Spanish labels and double as wire/storage representation.
type VehicleType string

const (
	VehicleFurgoneta  VehicleType = "Furgoneta"
	VehicleFurgon     VehicleType = "Furgón"
	VehiclePickUp     VehicleType = "Pick UP"
	VehicleCamionLeve VehicleType = "Camión ligero"
	VehicleCamionPes  VehicleType = "Camión pesado"
)

// AllVehicleTypes returns the full enumeration, in display order.
func AllVehicleTypes() []VehicleType {
	return []VehicleType{
		VehicleFurgoneta,
		VehicleFurgon,
		VehiclePickUp,
		VehicleCamionLeve,
		VehicleCamionPes,
	}
}

func ValidVehicleType(v VehicleType) bool {
	for _, t := range AllVehicleTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// JoinVehicleTypes serializes a set of categories as a comma list for the
// trips.suitable_vehicle_types column. Category labels never contain commas.
func JoinVehicleTypes(types []VehicleType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ",")
}

// SplitVehicleTypes parses the comma list back, dropping unknown labels.
func SplitVehicleTypes(raw string) []VehicleType {
	out := []VehicleType{}
	for _, p := range strings.Split(raw, ",") {
		v := VehicleType(strings.TrimSpace(p))
		if v == "" {
			continue
		}
		if ValidVehicleType(v) {
			out = append(out, v)
		}
	}
	return out
}
