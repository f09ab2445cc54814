package repositories

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	intconfig "fletapp/internal/config"
	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
)

const mysqlErrDuplicateEntry = 1062

type ReviewRepository struct {
	DB *sql.DB
}

func (r ReviewRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert stores a review. The (trip_id, reviewer_id) unique key turns a
// second submission into a ConflictError.
func (r ReviewRepository) Insert(rev models.Review) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO reviews (trip_id, reviewer_id, driver_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, rev.TripID, rev.ReviewerID, rev.DriverID, rev.Rating, rev.Comment)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, domain.ConflictError{Resource: "reseña", Msg: "ya calificaste este viaje"}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r ReviewRepository) ExistsForTrip(tripID int64, reviewerID string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM reviews WHERE trip_id = ? AND reviewer_id = ?
	`, tripID, reviewerID).Scan(&count)
	return count > 0, err
}

func (r ReviewRepository) ListByDriver(driverID string) ([]models.Review, error) {
	return r.list(`
		SELECT id, trip_id, reviewer_id, driver_id, rating, comment, created_at
		FROM reviews WHERE driver_id = ? ORDER BY created_at DESC`, driverID)
}

func (r ReviewRepository) ListAll() ([]models.Review, error) {
	return r.list(`
		SELECT id, trip_id, reviewer_id, driver_id, rating, comment, created_at
		FROM reviews ORDER BY created_at DESC`)
}

func (r ReviewRepository) list(query string, args ...any) ([]models.Review, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.TripID, &rev.ReviewerID, &rev.DriverID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
