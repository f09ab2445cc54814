package domain

import "testing"

func TestSortStandingsByRatingBreaksTiesByReviewCount(t *testing.T) {
	standings := []DriverStanding{
		{DriverID: "a", AverageRating: 5.0, ReviewCount: 1},
		{DriverID: "b", AverageRating: 5.0, ReviewCount: 20},
		{DriverID: "c", AverageRating: 4.8, ReviewCount: 50},
	}
	SortStandings(standings, SortByRating)

	want := []string{"b", "a", "c"}
	for i, id := range want {
		if standings[i].DriverID != id {
			t.Fatalf("position %d: got %s, want %s", i, standings[i].DriverID, id)
		}
	}
}

func TestSortStandingsSingleKey(t *testing.T) {
	standings := []DriverStanding{
		{DriverID: "a", TotalTrips: 3, TotalKg: 100},
		{DriverID: "b", TotalTrips: 7, TotalKg: 50},
	}
	SortStandings(standings, SortByTrips)
	if standings[0].DriverID != "b" {
		t.Fatalf("trips key: got %s first", standings[0].DriverID)
	}
	SortStandings(standings, SortByKilograms)
	if standings[0].DriverID != "a" {
		t.Fatalf("kilograms key: got %s first", standings[0].DriverID)
	}
}

func TestParseSortKey(t *testing.T) {
	if key, ok := ParseSortKey(""); !ok || key != SortByTrips {
		t.Fatalf("empty should default to trips, got %q ok=%v", key, ok)
	}
	if key, ok := ParseSortKey(" Rating "); !ok || key != SortByRating {
		t.Fatalf("case and spacing should be tolerated, got %q ok=%v", key, ok)
	}
	if _, ok := ParseSortKey("fame"); ok {
		t.Fatal("unknown key should be rejected")
	}
}
