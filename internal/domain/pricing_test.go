package domain

import (
	"testing"
	"time"
)

func TestEstimatePrice(t *testing.T) {
	cases := []struct {
		name       string
		driveMin   int
		loadMin    int
		unloadMin  int
		distanceKm float64
		want       int64
	}{
		{"short trip under bonus threshold", 40, 15, 15, 25, 44000},
		{"short trip over bonus threshold", 40, 15, 15, 35, 64000},
		{"partial hour rounds up", 60, 30, 35, 10, 66000},
		{"one minute over the hour bills two", 31, 15, 15, 10, 44000},
		{"exactly one hour", 30, 15, 15, 10, 22000},
		{"threshold is strict at 30 km", 40, 15, 15, 30, 44000},
		{"just past the threshold", 40, 15, 15, 30.1, 64000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimatePrice(tc.driveMin, tc.loadMin, tc.unloadMin, tc.distanceKm)
			if got != tc.want {
				t.Fatalf("EstimatePrice(%d,%d,%d,%v) = %d, want %d",
					tc.driveMin, tc.loadMin, tc.unloadMin, tc.distanceKm, got, tc.want)
			}
		})
	}
}

func TestFinalPrice(t *testing.T) {
	if got := FinalPrice(61, 10); got != 44000 {
		t.Fatalf("61 min should bill two hours, got %d", got)
	}
	if got := FinalPrice(120, 10); got != 44000 {
		t.Fatalf("120 min should bill two hours, got %d", got)
	}
	if got := FinalPrice(45, 32); got != 42000 {
		t.Fatalf("45 min over 30 km should be 22000+20000, got %d", got)
	}
}

func TestBilledHours(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 59: 1, 60: 1, 61: 2, 120: 2, 121: 3}
	for minutes, want := range cases {
		if got := BilledHours(minutes); got != want {
			t.Errorf("BilledHours(%d) = %d, want %d", minutes, got, want)
		}
	}
}

func TestTripDurationMin(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	if got := TripDurationMin(start, start.Add(90*time.Minute)); got != 90 {
		t.Fatalf("exact 90 min, got %d", got)
	}
	// partial minutes round up
	if got := TripDurationMin(start, start.Add(90*time.Minute+time.Second)); got != 91 {
		t.Fatalf("90 min 1 s should round to 91, got %d", got)
	}
}
