package services

import (
	"fmt"
	"strings"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
	"fletapp/internal/repositories"
	"fletapp/internal/utils"
)

// ReviewService creates and lists driver reviews. One review per customer
// per trip; the unique key in the table backs the pre-check.
type ReviewService struct {
	ReviewRepo ReviewRepo
	TripRepo   repositories.TripRepository
	RequestID  string
}

// ReviewRepo is the slice of the review repository the service consumes.
type ReviewRepo interface {
	Insert(rev models.Review) (int64, error)
	ExistsForTrip(tripID int64, reviewerID string) (bool, error)
	ListByDriver(driverID string) ([]models.Review, error)
	ListAll() ([]models.Review, error)
}

type NewReviewInput struct {
	TripID  int64  `json:"trip_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create registers the customer's rating of the driver that served the
// trip. Only the trip's customer may review, only after payment.
func (s ReviewService) Create(reviewerID string, in NewReviewInput) (models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return models.Review{}, domain.ValidationError{Field: "rating", Msg: "la calificación debe estar entre 1 y 5"}
	}

	trip, err := s.TripRepo.GetByID(in.TripID)
	if err != nil {
		return models.Review{}, err
	}
	if trip.CustomerID != reviewerID {
		return models.Review{}, domain.UnauthorizedError{Msg: "solo el cliente del viaje puede calificarlo"}
	}
	if trip.Status != domain.StatusPaid {
		return models.Review{}, domain.ConflictError{Resource: "reseña", Msg: "solo podés calificar viajes pagados"}
	}
	if trip.DriverID == nil {
		return models.Review{}, domain.ConflictError{Resource: "reseña", Msg: "el viaje no tiene fletero asignado"}
	}

	exists, err := s.ReviewRepo.ExistsForTrip(in.TripID, reviewerID)
	if err != nil {
		return models.Review{}, err
	}
	if exists {
		return models.Review{}, domain.ConflictError{Resource: "reseña", Msg: "ya calificaste este viaje"}
	}

	rev := models.Review{
		TripID:     in.TripID,
		ReviewerID: reviewerID,
		DriverID:   *trip.DriverID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	}
	id, err := s.ReviewRepo.Insert(rev)
	if err != nil {
		return models.Review{}, err
	}
	rev.ID = id
	utils.LogEvent(s.RequestID, "reviews", "create", fmt.Sprintf("trip_id=%d driver_id=%s rating=%d", in.TripID, rev.DriverID, in.Rating))
	return rev, nil
}

// ForDriver lists a driver's reviews, newest first, with the computed
// average alongside.
func (s ReviewService) ForDriver(driverID string) ([]models.Review, float64, error) {
	reviews, err := s.ReviewRepo.ListByDriver(driverID)
	if err != nil {
		return nil, 0, err
	}
	if len(reviews) == 0 {
		return []models.Review{}, 0, nil
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return reviews, avg, nil
}
