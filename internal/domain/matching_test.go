package domain

import "testing"

func TestEligibleForTrip(t *testing.T) {
	furgoneta := DriverCapacity{VehicleType: VehicleFurgoneta, CapacityKg: 1000, CapacityM3: 10}

	cases := []struct {
		name string
		trip TripRequirements
		want bool
	}{
		{
			"fits and category matches",
			TripRequirements{WeightKg: 800, VolumeM3: 8, SuitableVehicleTypes: []VehicleType{VehicleFurgoneta, VehicleFurgon}},
			true,
		},
		{
			"exact capacity is still eligible",
			TripRequirements{WeightKg: 1000, VolumeM3: 10, SuitableVehicleTypes: []VehicleType{VehicleFurgoneta}},
			true,
		},
		{
			"too heavy",
			TripRequirements{WeightKg: 1000.1, VolumeM3: 5, SuitableVehicleTypes: []VehicleType{VehicleFurgoneta}},
			false,
		},
		{
			"too bulky",
			TripRequirements{WeightKg: 500, VolumeM3: 10.5, SuitableVehicleTypes: []VehicleType{VehicleFurgoneta}},
			false,
		},
		{
			"category not in suitable set",
			TripRequirements{WeightKg: 500, VolumeM3: 5, SuitableVehicleTypes: []VehicleType{VehicleCamionPes}},
			false,
		},
		{
			"empty suitable set admits every category",
			TripRequirements{WeightKg: 500, VolumeM3: 5},
			true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EligibleForTrip(furgoneta, tc.trip); got != tc.want {
				t.Fatalf("EligibleForTrip = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSplitJoinVehicleTypes(t *testing.T) {
	types := []VehicleType{VehicleFurgoneta, VehiclePickUp}
	joined := JoinVehicleTypes(types)
	back := SplitVehicleTypes(joined)
	if len(back) != 2 || back[0] != VehicleFurgoneta || back[1] != VehiclePickUp {
		t.Fatalf("round trip gave %v", back)
	}
	if got := SplitVehicleTypes(""); len(got) != 0 {
		t.Fatalf("empty string should split to no categories, got %v", got)
	}
	if got := SplitVehicleTypes("Furgoneta,Carreta"); len(got) != 1 || got[0] != VehicleFurgoneta {
		t.Fatalf("unknown labels should be dropped, got %v", got)
	}
}
