package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
	"fletapp/internal/gateways"
	"fletapp/internal/repositories"
	"fletapp/internal/utils"
)

// Estimator is the AI estimation gateway as seen by the lifecycle. Every
// method may fail; TripService applies the per-call fallback policy (price
// blocks, ETA is optional, vehicle classification falls back to all).
type Estimator interface {
	TripEstimates(origin, destination, cargoDetails string) (*gateways.TripEstimate, error)
	DriverEta(driverLocation, tripOrigin string) (*int, error)
	SuitableVehicleTypes(cargoDetails string) ([]domain.VehicleType, error)
}

// TripService drives the trip lifecycle: create, accept, start, complete,
// pay. Each transition is a single conditional row update; a zero-row
// update means the trip moved underneath the caller.
type TripService struct {
	TripRepo    repositories.TripRepository
	ProfileRepo repositories.ProfileRepository
	Estimator   Estimator
	RequestID   string
	Now         func() time.Time
}

func (s TripService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type NewTripInput struct {
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	CargoDetails      string  `json:"cargo_details"`
	EstimatedWeightKg float64 `json:"estimated_weight_kg"`
	EstimatedVolumeM3 float64 `json:"estimated_volume_m3"`
}

func (in NewTripInput) validate() error {
	if strings.TrimSpace(in.Origin) == "" {
		return domain.ValidationError{Field: "origin", Msg: "el origen es obligatorio"}
	}
	if strings.TrimSpace(in.Destination) == "" {
		return domain.ValidationError{Field: "destination", Msg: "el destino es obligatorio"}
	}
	if strings.TrimSpace(in.CargoDetails) == "" {
		return domain.ValidationError{Field: "cargo_details", Msg: "la descripción de la carga es obligatoria"}
	}
	if in.EstimatedWeightKg <= 0 {
		return domain.ValidationError{Field: "estimated_weight_kg", Msg: "el peso debe ser mayor a cero"}
	}
	if in.EstimatedVolumeM3 <= 0 {
		return domain.ValidationError{Field: "estimated_volume_m3", Msg: "el volumen debe ser mayor a cero"}
	}
	return nil
}

// Create registers a requested trip for a customer. Pricing rule A blocks:
// without estimates there is no price and no trip. The vehicle-type
// classification is best-effort and falls back to every category.
func (s TripService) Create(customerID string, in NewTripInput) (models.Trip, error) {
	profile, err := s.ProfileRepo.GetByID(customerID)
	if err != nil {
		return models.Trip{}, err
	}
	if profile.Role != models.RoleCustomer {
		return models.Trip{}, domain.UnauthorizedError{Msg: "solo los clientes pueden solicitar viajes"}
	}
	if err := in.validate(); err != nil {
		return models.Trip{}, err
	}

	estimates, err := s.Estimator.TripEstimates(in.Origin, in.Destination, in.CargoDetails)
	if err != nil {
		utils.LogEvent(s.RequestID, "trips", "estimates_failed", err.Error())
		return models.Trip{}, domain.InternalError{Msg: "no se pudo calcular el precio del viaje, intentá de nuevo", Err: err}
	}

	driveMin := int(math.Round(estimates.EstimatedDriveTimeMin))
	loadMin := int(math.Round(estimates.EstimatedLoadTimeMin))
	unloadMin := int(math.Round(estimates.EstimatedUnloadTimeMin))
	price := domain.EstimatePrice(driveMin, loadMin, unloadMin, estimates.DistanceKm)

	suitable, err := s.Estimator.SuitableVehicleTypes(in.CargoDetails)
	if err != nil || len(suitable) == 0 {
		if err != nil {
			utils.LogEvent(s.RequestID, "trips", "vehicle_types_fallback", err.Error())
		}
		suitable = domain.AllVehicleTypes()
	}

	trip := models.Trip{
		CustomerID:             customerID,
		Origin:                 strings.TrimSpace(in.Origin),
		Destination:            strings.TrimSpace(in.Destination),
		CargoDetails:           strings.TrimSpace(in.CargoDetails),
		EstimatedWeightKg:      in.EstimatedWeightKg,
		EstimatedVolumeM3:      in.EstimatedVolumeM3,
		DistanceKm:             &estimates.DistanceKm,
		EstimatedDriveTimeMin:  &driveMin,
		EstimatedLoadTimeMin:   &loadMin,
		EstimatedUnloadTimeMin: &unloadMin,
		Price:                  &price,
		Status:                 domain.StatusRequested,
		SuitableVehicleTypes:   suitable,
	}

	id, err := s.TripRepo.Create(trip)
	if err != nil {
		return models.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trips", "create", fmt.Sprintf("trip_id=%d customer_id=%s price=%d", id, customerID, price))
	return s.TripRepo.GetByID(id)
}

// Accept assigns the calling driver to a requested trip. The driver must
// pass the eligibility filter; the row update is conditional, so losing a
// race against another driver surfaces as a conflict.
func (s TripService) Accept(driverID string, tripID int64) (models.Trip, error) {
	profile, err := s.ProfileRepo.GetByID(driverID)
	if err != nil {
		return models.Trip{}, err
	}
	if profile.Role != models.RoleDriver {
		return models.Trip{}, domain.UnauthorizedError{Msg: "solo los fleteros pueden aceptar viajes"}
	}
	capacity, ok := profile.Capacity()
	if !ok {
		return models.Trip{}, domain.ValidationError{Msg: "completá los datos de tu vehículo para aceptar viajes"}
	}

	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if trip.Status != domain.StatusRequested {
		return models.Trip{}, domain.ConflictError{Resource: "viaje", Msg: "el viaje ya no está disponible"}
	}
	if !domain.EligibleForTrip(capacity, trip.Requirements()) {
		return models.Trip{}, domain.ValidationError{Msg: "tu vehículo no cumple los requisitos de este viaje"}
	}

	// Best-effort ETA: its absence never blocks the acceptance.
	eta, err := s.Estimator.DriverEta(profile.Address, trip.Origin)
	if err != nil {
		utils.LogEvent(s.RequestID, "trips", "eta_failed", err.Error())
		eta = nil
	}

	accepted, err := s.TripRepo.Accept(tripID, driverID, eta)
	if err != nil {
		return models.Trip{}, err
	}
	if !accepted {
		return models.Trip{}, domain.ConflictError{Resource: "viaje", Msg: "el viaje ya no está disponible"}
	}
	utils.LogEvent(s.RequestID, "trips", "accept", fmt.Sprintf("trip_id=%d driver_id=%s", tripID, driverID))
	return s.TripRepo.GetByID(tripID)
}

// Start moves an accepted trip to in_transit, stamping the start time.
func (s TripService) Start(driverID string, tripID int64) (models.Trip, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if trip.DriverID == nil || *trip.DriverID != driverID {
		return models.Trip{}, domain.UnauthorizedError{Msg: "solo el fletero asignado puede iniciar el viaje"}
	}
	if trip.Status != domain.StatusAccepted {
		return models.Trip{}, domain.ConflictError{Resource: "viaje", Msg: "el viaje no está en estado aceptado"}
	}

	started, err := s.TripRepo.Start(tripID, driverID, s.now())
	if err != nil {
		return models.Trip{}, err
	}
	if !started {
		return models.Trip{}, domain.ConflictError{Resource: "viaje", Msg: "el viaje no está en estado aceptado"}
	}
	utils.LogEvent(s.RequestID, "trips", "start", fmt.Sprintf("trip_id=%d driver_id=%s", tripID, driverID))
	return s.TripRepo.GetByID(tripID)
}

// Complete closes an in_transit trip: final duration from the wall clock,
// final price by rule B. Both are written exactly once.
func (s TripService) Complete(driverID string, tripID int64) (models.Trip, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if trip.DriverID == nil || *trip.DriverID != driverID {
		return models.Trip{}, domain.UnauthorizedError{Msg: "solo el fletero asignado puede completar el viaje"}
	}
	if trip.Status != domain.StatusInTransit || trip.StartTime == nil {
		return models.Trip{}, domain.ConflictError{Resource: "viaje", Msg: "el viaje no está en curso"}
	}

	finalDurationMin := domain.TripDurationMin(*trip.StartTime, s.now())
	distanceKm := 0.0
	if trip.DistanceKm != nil {
		distanceKm = *trip.DistanceKm
	}
	finalPrice := domain.FinalPrice(finalDurationMin, distanceKm)

	completed, err := s.TripRepo.Complete(tripID, driverID, finalDurationMin, finalPrice)
	if err != nil {
		return models.Trip{}, err
	}
	if !completed {
		return models.Trip{}, domain.ConflictError{Resource: "viaje", Msg: "el viaje no está en curso"}
	}
	utils.LogEvent(s.RequestID, "trips", "complete", fmt.Sprintf("trip_id=%d duration_min=%d final_price=%d", tripID, finalDurationMin, finalPrice))
	return s.TripRepo.GetByID(tripID)
}

// Pay marks a completed trip as paid, on the customer's confirmation or
// the payment gateway's callback.
func (s TripService) Pay(customerID string, tripID int64) (models.Trip, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if trip.CustomerID != customerID {
		return models.Trip{}, domain.UnauthorizedError{Msg: "solo el cliente del viaje puede confirmar el pago"}
	}
	if trip.Status != domain.StatusCompleted {
		return models.Trip{}, domain.ConflictError{Resource: "viaje", Msg: "el viaje no está pendiente de pago"}
	}

	paid, err := s.TripRepo.MarkPaid(tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if !paid {
		return models.Trip{}, domain.ConflictError{Resource: "viaje", Msg: "el viaje no está pendiente de pago"}
	}
	utils.LogEvent(s.RequestID, "trips", "pay", fmt.Sprintf("trip_id=%d", tripID))
	return s.TripRepo.GetByID(tripID)
}

// ListForUser returns the trips a user participates in: their requests for
// customers, their assignments for drivers.
func (s TripService) ListForUser(profile models.Profile) ([]models.Trip, error) {
	if profile.Role == models.RoleDriver {
		return s.TripRepo.ListByDriver(profile.ID)
	}
	return s.TripRepo.ListByCustomer(profile.ID)
}

// AvailableForDriver returns the requested trips the driver is eligible
// for. A driver without a complete vehicle block sees no trips at all.
func (s TripService) AvailableForDriver(driverID string) ([]models.Trip, error) {
	profile, err := s.ProfileRepo.GetByID(driverID)
	if err != nil {
		return nil, err
	}
	if profile.Role != models.RoleDriver {
		return nil, domain.UnauthorizedError{Msg: "solo los fleteros ven viajes disponibles"}
	}
	capacity, ok := profile.Capacity()
	if !ok {
		return []models.Trip{}, nil
	}

	requested, err := s.TripRepo.ListRequested()
	if err != nil {
		return nil, err
	}
	out := []models.Trip{}
	for _, trip := range requested {
		if domain.EligibleForTrip(capacity, trip.Requirements()) {
			out = append(out, trip)
		}
	}
	return out, nil
}
