package services

import (
	"fmt"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
	"fletapp/internal/repositories"
	"fletapp/internal/utils"
)

// PreferenceCreator is the Mercado Pago checkout gateway as the payment
// flow sees it.
type PreferenceCreator interface {
	CreatePreference(trip models.Trip) (string, error)
}

// PaymentService drives the checkout of a completed trip: a Mercado Pago
// preference to pay it, then the confirmation that marks it paid.
type PaymentService struct {
	TripRepo    repositories.TripRepository
	MercadoPago PreferenceCreator
	RequestID   string
}

// CreatePreference opens a checkout for the trip's final price. Only the
// trip's customer can pay, and only a completed trip has a price to pay.
func (s PaymentService) CreatePreference(customerID string, tripID int64) (string, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return "", err
	}
	if trip.CustomerID != customerID {
		return "", domain.UnauthorizedError{Msg: "solo el cliente del viaje puede pagarlo"}
	}
	if trip.Status != domain.StatusCompleted || trip.FinalPrice == nil {
		return "", domain.ConflictError{Resource: "pago", Msg: "el viaje no está pendiente de pago"}
	}

	preferenceID, err := s.MercadoPago.CreatePreference(trip)
	if err != nil {
		utils.LogEvent(s.RequestID, "payments", "preference_failed", err.Error())
		return "", domain.InternalError{Msg: "no se pudo iniciar el pago, intentá de nuevo", Err: err}
	}
	utils.LogEvent(s.RequestID, "payments", "preference", fmt.Sprintf("trip_id=%d preference_id=%s", tripID, preferenceID))
	return preferenceID, nil
}

// Confirm settles the trip after the gateway redirects back. Any status
// other than success leaves the trip completed and unpaid.
func (s PaymentService) Confirm(customerID string, tripID int64, paymentStatus string) (models.Trip, error) {
	if paymentStatus != "success" {
		utils.LogEvent(s.RequestID, "payments", "confirm_ignored", fmt.Sprintf("trip_id=%d status=%s", tripID, paymentStatus))
		return s.ownTrip(customerID, tripID)
	}

	trip, err := s.ownTrip(customerID, tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if trip.Status == domain.StatusPaid {
		return trip, nil
	}
	if trip.Status != domain.StatusCompleted {
		return models.Trip{}, domain.ConflictError{Resource: "pago", Msg: "el viaje no está pendiente de pago"}
	}

	paid, err := s.TripRepo.MarkPaid(tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if !paid {
		return models.Trip{}, domain.ConflictError{Resource: "pago", Msg: "el viaje no está pendiente de pago"}
	}
	utils.LogEvent(s.RequestID, "payments", "confirm", fmt.Sprintf("trip_id=%d", tripID))
	return s.TripRepo.GetByID(tripID)
}

func (s PaymentService) ownTrip(customerID string, tripID int64) (models.Trip, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if trip.CustomerID != customerID {
		return models.Trip{}, domain.UnauthorizedError{Msg: "solo el cliente del viaje puede confirmar el pago"}
	}
	return trip, nil
}
