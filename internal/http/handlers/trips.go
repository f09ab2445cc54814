package handlers

import (
	"net/http"

	"fletapp/internal/domain"
	"fletapp/internal/http/middleware"
	"fletapp/internal/repositories"
	"fletapp/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		TripRepo:    repositories.TripRepository{},
		ProfileRepo: repositories.ProfileRepository{},
		Estimator:   estimator,
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/trips — the caller's trips: requests for customers, assignments
// for drivers.
func GetMyTrips(c *gin.Context) {
	repo := repositories.ProfileRepository{}
	profile, err := repo.GetByID(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trips, err := tripService(c).ListForUser(profile)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/available-trips — requested trips the driver is eligible for.
func GetAvailableTrips(c *gin.Context) {
	trips, err := tripService(c).AvailableForDriver(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/trips/:id — participants always see the trip; drivers also see
// it while it is still open for acceptance.
func GetTrip(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	repo := repositories.TripRepository{}
	trip, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	userID := middleware.GetUserID(c)
	if !trip.IsParticipant(userID) {
		if !(trip.Status == domain.StatusRequested && middleware.GetUserRole(c) == "driver") {
			RespondError(c, http.StatusForbidden, "no tenés acceso a este viaje", nil)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var req services.NewTripInput
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := tripService(c).Create(middleware.GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "viaje solicitado", "trip": trip})
}

// POST /api/trips/:id/accept
func AcceptTrip(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	trip, err := tripService(c).Accept(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "viaje aceptado", "trip": trip})
}

// POST /api/trips/:id/start
func StartTrip(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	trip, err := tripService(c).Start(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "viaje iniciado", "trip": trip})
}

// POST /api/trips/:id/complete
func CompleteTrip(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	trip, err := tripService(c).Complete(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "viaje completado", "trip": trip})
}

// POST /api/trips/:id/pay — manual confirmation, e.g. cash on delivery.
func PayTrip(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	trip, err := tripService(c).Pay(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pago registrado", "trip": trip})
}
