package services

import (
	"testing"
	"time"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
	"fletapp/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRankingStandings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM profiles").
		WillReturnRows(sqlmock.NewRows(profileRowColumns).
			AddRow("driver-1", "b@x.com", "Beto", "1", "t1", "Flores", "driver",
				"Ducato", "Furgoneta", 1000.0, 10.0, 30.0, nil, nil, time.Now()).
			AddRow("driver-2", "c@x.com", "Caro", "2", "t2", "Núñez", "driver",
				"Sprinter", "Furgón", 1500.0, 14.0, 40.0, nil, nil, time.Now()))

	// driver-1 has two finished trips, driver-2 one finished and one still
	// requested (ignored).
	mock.ExpectQuery("FROM trips").
		WillReturnRows(sqlmock.NewRows(tripRowColumns).
			AddRow(1, "c1", "driver-1", "A", "B", "cajas", 100.0, 1.0, 10.0, 30, 15, 15, nil, 22000, "paid", "", time.Now(), 60, 22000, time.Now()).
			AddRow(2, "c1", "driver-1", "A", "B", "cajas", 200.0, 2.0, 20.0, 30, 15, 15, nil, 22000, "completed", "", time.Now(), 60, 22000, time.Now()).
			AddRow(3, "c2", "driver-2", "A", "B", "cajas", 900.0, 9.0, 90.0, 30, 15, 15, nil, 22000, "paid", "", time.Now(), 60, 22000, time.Now()).
			AddRow(4, "c2", nil, "A", "B", "cajas", 50.0, 1.0, 5.0, 30, 15, 15, nil, 22000, "requested", "", nil, nil, nil, time.Now()))

	mock.ExpectQuery("FROM reviews").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "reviewer_id", "driver_id", "rating", "comment", "created_at"}).
			AddRow(1, 1, "c1", "driver-1", 5, "", time.Now()).
			AddRow(2, 3, "c2", "driver-2", 4, "", time.Now()))

	svc := RankingService{
		ProfileRepo: repositories.ProfileRepository{DB: db},
		TripRepo:    repositories.TripRepository{DB: db},
		ReviewRepo:  repositories.ReviewRepository{DB: db},
	}

	standings, err := svc.Standings(domain.SortByTrips)
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("standings = %v", standings)
	}
	top := standings[0]
	if top.DriverID != "driver-1" || top.TotalTrips != 2 || top.TotalKg != 300 {
		t.Fatalf("top = %+v", top)
	}
	if top.AverageRating != 5.0 || top.ReviewCount != 1 {
		t.Fatalf("top rating = %+v", top)
	}

	second := standings[1]
	if second.DriverID != "driver-2" || second.TotalKg != 900 || second.TotalKm != 90 {
		t.Fatalf("second = %+v", second)
	}

	// By kilograms, driver-2's single heavy trip wins.
	domain.SortStandings(standings, domain.SortByKilograms)
	if standings[0].DriverID != "driver-2" {
		t.Fatalf("kilograms top = %+v", standings[0])
	}
}

func TestRankingFinished(t *testing.T) {
	if finished(models.Trip{Status: domain.StatusRequested}) {
		t.Fatal("requested is not finished")
	}
	if !finished(models.Trip{Status: domain.StatusCompleted}) || !finished(models.Trip{Status: domain.StatusPaid}) {
		t.Fatal("completed and paid count as finished")
	}
}
