package repositories

import (
	"testing"
	"time"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var tripRowColumns = []string{
	"id", "customer_id", "driver_id", "origin", "destination", "cargo_details",
	"estimated_weight_kg", "estimated_volume_m3", "distance_km",
	"estimated_drive_time_min", "estimated_load_time_min", "estimated_unload_time_min",
	"driver_arrival_time_min", "price", "status", "suitable_vehicle_types",
	"start_time", "final_duration_min", "final_price", "created_at",
}

func TestTripAcceptIsConditional(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := TripRepository{DB: db}

	// First driver wins the row.
	mock.ExpectExec("UPDATE trips").
		WithArgs("driver-1", 12, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Second driver hits zero rows.
	mock.ExpectExec("UPDATE trips").
		WithArgs("driver-2", nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	eta := 12
	ok, err := repo.Accept(7, "driver-1", &eta)
	if err != nil || !ok {
		t.Fatalf("first accept: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Accept(7, "driver-2", nil)
	if err != nil {
		t.Fatalf("second accept error: %v", err)
	}
	if ok {
		t.Fatal("losing driver should get ok=false")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripMarkPaidRequiresCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := TripRepository{DB: db}

	mock.ExpectExec("UPDATE trips").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkPaid(9)
	if err != nil {
		t.Fatalf("MarkPaid error: %v", err)
	}
	if ok {
		t.Fatal("paying a non-completed trip should report false")
	}
}

func TestTripGetByIDScansOptionals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := TripRepository{DB: db}
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT(.|\n)+FROM trips").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(tripRowColumns).AddRow(
			3, "cust-1", nil, "Palermo", "Caballito", "mudanza chica",
			300.0, 4.5, 12.3,
			40, 15, 15,
			nil, 44000, "requested", "Furgoneta,Furgón",
			nil, nil, nil, created,
		))

	trip, err := repo.GetByID(3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if trip.DriverID != nil || trip.StartTime != nil || trip.FinalPrice != nil {
		t.Fatal("null columns should stay nil")
	}
	if trip.Price == nil || *trip.Price != 44000 {
		t.Fatalf("price = %v", trip.Price)
	}
	if len(trip.SuitableVehicleTypes) != 2 || trip.SuitableVehicleTypes[1] != domain.VehicleFurgon {
		t.Fatalf("suitable types = %v", trip.SuitableVehicleTypes)
	}
}

func TestTripGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := TripRepository{DB: db}
	mock.ExpectQuery("SELECT(.|\n)+FROM trips").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(tripRowColumns))

	_, err = repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("want not-found, got %v", err)
	}
}

func TestTripCreateSerializesVehicleTypes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := TripRepository{DB: db}
	price := int64(44000)
	distance := 12.3
	drive, load, unload := 40, 15, 15

	mock.ExpectExec("INSERT INTO trips").
		WithArgs("cust-1", "Palermo", "Caballito", "mudanza chica",
			300.0, 4.5, distance,
			drive, load, unload,
			price, "requested", "Furgoneta,Furgón").
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := repo.Create(models.Trip{
		CustomerID:             "cust-1",
		Origin:                 "Palermo",
		Destination:            "Caballito",
		CargoDetails:           "mudanza chica",
		EstimatedWeightKg:      300,
		EstimatedVolumeM3:      4.5,
		DistanceKm:             &distance,
		EstimatedDriveTimeMin:  &drive,
		EstimatedLoadTimeMin:   &load,
		EstimatedUnloadTimeMin: &unload,
		Price:                  &price,
		Status:                 domain.StatusRequested,
		SuitableVehicleTypes:   []domain.VehicleType{domain.VehicleFurgoneta, domain.VehicleFurgon},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 5 {
		t.Fatalf("id = %d", id)
	}
}
