package services

import (
	"fletapp/internal/domain"
	"fletapp/internal/domain/models"
	"fletapp/internal/repositories"
)

// RankingService builds the public driver leaderboard. Totals accumulate
// over finished trips (completed or paid); ratings come from reviews.
type RankingService struct {
	ProfileRepo repositories.ProfileRepository
	TripRepo    repositories.TripRepository
	ReviewRepo  ReviewRepo
}

// Standings aggregates every driver's numbers and sorts them by the given
// key. Drivers with no activity still appear, with zeroes.
func (s RankingService) Standings(key domain.SortKey) ([]domain.DriverStanding, error) {
	drivers, err := s.ProfileRepo.ListDrivers()
	if err != nil {
		return nil, err
	}
	trips, err := s.TripRepo.ListAll()
	if err != nil {
		return nil, err
	}
	reviews, err := s.ReviewRepo.ListAll()
	if err != nil {
		return nil, err
	}

	byDriver := make(map[string]*domain.DriverStanding, len(drivers))
	out := make([]domain.DriverStanding, 0, len(drivers))
	for _, d := range drivers {
		standing := domain.DriverStanding{DriverID: d.ID, FullName: d.FullName}
		if d.VehicleType != nil {
			standing.VehicleType = *d.VehicleType
		}
		if d.PhotoURL != nil {
			standing.PhotoURL = *d.PhotoURL
		}
		out = append(out, standing)
		byDriver[d.ID] = &out[len(out)-1]
	}

	for _, t := range trips {
		if t.DriverID == nil || !finished(t) {
			continue
		}
		standing, ok := byDriver[*t.DriverID]
		if !ok {
			continue
		}
		standing.TotalTrips++
		standing.TotalKg += t.EstimatedWeightKg
		standing.TotalM3 += t.EstimatedVolumeM3
		if t.DistanceKm != nil {
			standing.TotalKm += *t.DistanceKm
		}
	}

	ratingSum := make(map[string]int, len(byDriver))
	for _, r := range reviews {
		standing, ok := byDriver[r.DriverID]
		if !ok {
			continue
		}
		standing.ReviewCount++
		ratingSum[r.DriverID] += r.Rating
	}
	for id, standing := range byDriver {
		if standing.ReviewCount > 0 {
			standing.AverageRating = float64(ratingSum[id]) / float64(standing.ReviewCount)
		}
	}

	domain.SortStandings(out, key)
	return out, nil
}

// DriverStats aggregates one driver's public numbers, for the driver
// profile view.
func (s RankingService) DriverStats(driverID string) (domain.DriverStanding, error) {
	driver, err := s.ProfileRepo.GetByID(driverID)
	if err != nil {
		return domain.DriverStanding{}, err
	}
	if driver.Role != models.RoleDriver {
		return domain.DriverStanding{}, domain.NotFoundError{Resource: "fletero"}
	}

	standing := domain.DriverStanding{DriverID: driver.ID, FullName: driver.FullName}
	if driver.VehicleType != nil {
		standing.VehicleType = *driver.VehicleType
	}
	if driver.PhotoURL != nil {
		standing.PhotoURL = *driver.PhotoURL
	}

	trips, err := s.TripRepo.ListByDriver(driverID)
	if err != nil {
		return domain.DriverStanding{}, err
	}
	for _, t := range trips {
		if !finished(t) {
			continue
		}
		standing.TotalTrips++
		standing.TotalKg += t.EstimatedWeightKg
		standing.TotalM3 += t.EstimatedVolumeM3
		if t.DistanceKm != nil {
			standing.TotalKm += *t.DistanceKm
		}
	}

	reviews, err := s.ReviewRepo.ListByDriver(driverID)
	if err != nil {
		return domain.DriverStanding{}, err
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	standing.ReviewCount = len(reviews)
	if standing.ReviewCount > 0 {
		standing.AverageRating = float64(total) / float64(standing.ReviewCount)
	}
	return standing, nil
}

func finished(t models.Trip) bool {
	return t.Status == domain.StatusCompleted || t.Status == domain.StatusPaid
}
