package repositories

import (
	"testing"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestReviewInsertMapsDuplicateToConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := ReviewRepository{DB: db}

	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	rev := models.Review{TripID: 4, ReviewerID: "cust-1", DriverID: "driver-1", Rating: 5, Comment: "impecable"}

	id, err := repo.Insert(rev)
	if err != nil || id != 1 {
		t.Fatalf("first insert: id=%d err=%v", id, err)
	}
	_, err = repo.Insert(rev)
	if !domain.IsConflict(err) {
		t.Fatalf("second insert should conflict, got %v", err)
	}
}

func TestReviewExistsForTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := ReviewRepository{DB: db}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(4), "cust-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsForTrip(4, "cust-1")
	if err != nil {
		t.Fatalf("ExistsForTrip error: %v", err)
	}
	if !exists {
		t.Fatal("want exists=true")
	}
}
