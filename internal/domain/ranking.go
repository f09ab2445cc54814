package domain

import (
	"sort"
	"strings"
)

// SortKey selects one of the five interchangeable ranking criteria.
type SortKey string

const (
	SortByTrips      SortKey = "trips"
	SortByKilograms  SortKey = "kilograms"
	SortByVolume     SortKey = "volume"
	SortByKilometers SortKey = "kilometers"
	SortByRating     SortKey = "rating"
)

func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByTrips, "":
		return SortByTrips, true
	case SortByKilograms:
		return SortByKilograms, true
	case SortByVolume:
		return SortByVolume, true
	case SortByKilometers:
		return SortByKilometers, true
	case SortByRating:
		return SortByRating, true
	default:
		return "", false
	}
}

// DriverStanding is one ranked row: a driver plus the totals over their
// completed and paid trips and the reviews naming them.
type DriverStanding struct {
	DriverID      string      `json:"driver_id"`
	FullName      string      `json:"full_name"`
	VehicleType   VehicleType `json:"vehicle_type,omitempty"`
	PhotoURL      string      `json:"photo_url,omitempty"`
	TotalTrips    int         `json:"total_trips"`
	TotalKg       float64     `json:"total_kg"`
	TotalM3       float64     `json:"total_m3"`
	TotalKm       float64     `json:"total_km"`
	AverageRating float64     `json:"average_rating"`
	ReviewCount   int         `json:"review_count"`
}

// SortStandings orders standings descending by the chosen key. The sort is
// stable; only the rating key has a secondary criterion (review count
// descending, so a 5.0 over twenty reviews outranks a 5.0 over one).
func SortStandings(standings []DriverStanding, key SortKey) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		switch key {
		case SortByRating:
			if a.AverageRating != b.AverageRating {
				return a.AverageRating > b.AverageRating
			}
			return a.ReviewCount > b.ReviewCount
		case SortByKilograms:
			return a.TotalKg > b.TotalKg
		case SortByVolume:
			return a.TotalM3 > b.TotalM3
		case SortByKilometers:
			return a.TotalKm > b.TotalKm
		default:
			return a.TotalTrips > b.TotalTrips
		}
	})
}
