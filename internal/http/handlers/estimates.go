package handlers

import (
	"net/http"

	"fletapp/internal/http/middleware"
	"fletapp/internal/utils"

	"github.com/gin-gonic/gin"
)

type tripEstimateRequest struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	CargoDetails string `json:"cargo_details"`
}

// POST /api/estimates/trip — quote preview before the customer commits to
// a trip request. The same numbers feed trip creation server-side.
func EstimateTrip(c *gin.Context) {
	var req tripEstimateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Origin == "" || req.Destination == "" || req.CargoDetails == "" {
		RespondError(c, http.StatusBadRequest, "origen, destino y carga son obligatorios", nil)
		return
	}

	est, err := estimator.TripEstimates(req.Origin, req.Destination, req.CargoDetails)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "estimates", "trip_failed", err.Error())
		RespondError(c, http.StatusBadGateway, "no se pudo calcular la estimación", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"estimate": est})
}

type etaRequest struct {
	DriverLocation string `json:"driver_location"`
	TripOrigin     string `json:"trip_origin"`
}

// POST /api/estimates/eta — minutes for a driver to reach the pickup
// point. A null eta means the gateway could not tell.
func EstimateDriverEta(c *gin.Context) {
	var req etaRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.DriverLocation == "" || req.TripOrigin == "" {
		RespondError(c, http.StatusBadRequest, "ubicación del fletero y origen son obligatorios", nil)
		return
	}
	eta, err := estimator.DriverEta(req.DriverLocation, req.TripOrigin)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "estimates", "eta_failed", err.Error())
		RespondError(c, http.StatusBadGateway, "no se pudo estimar la llegada", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"eta_minutes": eta})
}

type vehicleTypesRequest struct {
	CargoDetails string `json:"cargo_details"`
}

// POST /api/estimates/vehicle-types
func EstimateVehicleTypes(c *gin.Context) {
	var req vehicleTypesRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	types, err := estimator.SuitableVehicleTypes(req.CargoDetails)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "estimates", "vehicle_types_failed", err.Error())
		RespondError(c, http.StatusBadGateway, "no se pudo clasificar la carga", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suitable_vehicle_types": types})
}

type routeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// POST /api/estimates/route — distance and duration via the maps proxy,
// for drawing the route client-side.
func EstimateRoute(c *gin.Context) {
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Origin == "" || req.Destination == "" {
		RespondError(c, http.StatusBadRequest, "origen y destino son obligatorios", nil)
		return
	}

	route, err := mapsClient.RouteDetails(req.Origin, req.Destination)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "estimates", "route_failed", err.Error())
		RespondError(c, http.StatusBadGateway, "no se pudo calcular la ruta", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"distance_meters":  route.DistanceMeters,
		"duration_seconds": route.DurationSeconds,
		"distance_km":      route.DistanceKm(),
	})
}
