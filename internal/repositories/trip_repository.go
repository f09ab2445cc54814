package repositories

import (
	"database/sql"
	"time"

	intconfig "fletapp/internal/config"
	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `
	id,
	customer_id,
	driver_id,
	origin,
	destination,
	cargo_details,
	estimated_weight_kg,
	estimated_volume_m3,
	distance_km,
	estimated_drive_time_min,
	estimated_load_time_min,
	estimated_unload_time_min,
	driver_arrival_time_min,
	price,
	status,
	COALESCE(suitable_vehicle_types, ''),
	start_time,
	final_duration_min,
	final_price,
	created_at`

func scanTrip(row interface{ Scan(dest ...any) error }) (models.Trip, error) {
	var (
		t                     models.Trip
		driverID              sql.NullString
		distanceKm            sql.NullFloat64
		driveMin, loadMin     sql.NullInt64
		unloadMin, arrivalMin sql.NullInt64
		price, finalPrice     sql.NullInt64
		suitableRaw           string
		startTime             sql.NullTime
		finalDurationMin      sql.NullInt64
	)
	err := row.Scan(
		&t.ID,
		&t.CustomerID,
		&driverID,
		&t.Origin,
		&t.Destination,
		&t.CargoDetails,
		&t.EstimatedWeightKg,
		&t.EstimatedVolumeM3,
		&distanceKm,
		&driveMin,
		&loadMin,
		&unloadMin,
		&arrivalMin,
		&price,
		&t.Status,
		&suitableRaw,
		&startTime,
		&finalDurationMin,
		&finalPrice,
		&t.CreatedAt,
	)
	if err != nil {
		return models.Trip{}, err
	}
	if driverID.Valid {
		v := driverID.String
		t.DriverID = &v
	}
	if distanceKm.Valid {
		v := distanceKm.Float64
		t.DistanceKm = &v
	}
	t.EstimatedDriveTimeMin = intFromNull(driveMin)
	t.EstimatedLoadTimeMin = intFromNull(loadMin)
	t.EstimatedUnloadTimeMin = intFromNull(unloadMin)
	t.DriverArrivalTimeMin = intFromNull(arrivalMin)
	if price.Valid {
		v := price.Int64
		t.Price = &v
	}
	t.SuitableVehicleTypes = domain.SplitVehicleTypes(suitableRaw)
	if startTime.Valid {
		v := startTime.Time
		t.StartTime = &v
	}
	t.FinalDurationMin = intFromNull(finalDurationMin)
	if finalPrice.Valid {
		v := finalPrice.Int64
		t.FinalPrice = &v
	}
	return t, nil
}

func intFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// Create inserts a requested trip and returns the store-assigned id.
func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips
			(customer_id, driver_id, origin, destination, cargo_details,
			 estimated_weight_kg, estimated_volume_m3, distance_km,
			 estimated_drive_time_min, estimated_load_time_min, estimated_unload_time_min,
			 price, status, suitable_vehicle_types, created_at)
		VALUES (?, NULL, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		t.CustomerID, t.Origin, t.Destination, t.CargoDetails,
		t.EstimatedWeightKg, t.EstimatedVolumeM3, nullFloatPtr(t.DistanceKm),
		nullIntPtr(t.EstimatedDriveTimeMin), nullIntPtr(t.EstimatedLoadTimeMin), nullIntPtr(t.EstimatedUnloadTimeMin),
		nullInt64Ptr(t.Price), string(t.Status), domain.JoinVehicleTypes(t.SuitableVehicleTypes),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id = ? LIMIT 1`, id)
	t, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return models.Trip{}, domain.NotFoundError{Resource: "viaje"}
	}
	return t, err
}

func (r TripRepository) ListByCustomer(customerID string) ([]models.Trip, error) {
	return r.list(`SELECT `+tripColumns+` FROM trips WHERE customer_id = ? ORDER BY created_at DESC`, customerID)
}

func (r TripRepository) ListByDriver(driverID string) ([]models.Trip, error) {
	return r.list(`SELECT `+tripColumns+` FROM trips WHERE driver_id = ? ORDER BY created_at DESC`, driverID)
}

func (r TripRepository) ListRequested() ([]models.Trip, error) {
	return r.list(`SELECT ` + tripColumns + ` FROM trips WHERE status = 'requested' ORDER BY created_at DESC`)
}

func (r TripRepository) ListAll() ([]models.Trip, error) {
	return r.list(`SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC`)
}

func (r TripRepository) list(query string, args ...any) ([]models.Trip, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Accept assigns a driver with a conditional update: the row must still be
// requested and unassigned. A zero-row result means another driver won the
// race, reported as false (not an error).
func (r TripRepository) Accept(tripID int64, driverID string, etaMin *int) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE trips
		SET status = 'accepted', driver_id = ?, driver_arrival_time_min = ?
		WHERE id = ? AND status = 'requested' AND driver_id IS NULL
	`, driverID, nullIntPtr(etaMin), tripID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Start records the start timestamp; conditional on the caller still being
// the assigned driver of an accepted trip.
func (r TripRepository) Start(tripID int64, driverID string, startTime time.Time) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE trips
		SET status = 'in_transit', start_time = ?
		WHERE id = ? AND status = 'accepted' AND driver_id = ?
	`, startTime, tripID, driverID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Complete stores the final duration and price exactly once.
func (r TripRepository) Complete(tripID int64, driverID string, finalDurationMin int, finalPrice int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE trips
		SET status = 'completed', final_duration_min = ?, final_price = ?
		WHERE id = ? AND status = 'in_transit' AND driver_id = ?
	`, finalDurationMin, finalPrice, tripID, driverID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r TripRepository) MarkPaid(tripID int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE trips
		SET status = 'paid'
		WHERE id = ? AND status = 'completed'
	`, tripID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
