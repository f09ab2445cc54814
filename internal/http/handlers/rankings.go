package handlers

import (
	"net/http"

	"fletapp/internal/domain"
	"fletapp/internal/repositories"
	"fletapp/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/rankings?sort=trips|kilograms|volume|kilometers|rating
func GetRankings(c *gin.Context) {
	key, ok := domain.ParseSortKey(c.Query("sort"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "criterio de orden inválido", nil)
		return
	}

	svc := services.RankingService{
		ProfileRepo: repositories.ProfileRepository{},
		TripRepo:    repositories.TripRepository{},
		ReviewRepo:  repositories.ReviewRepository{},
	}
	standings, err := svc.Standings(key)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sort": key, "rankings": standings})
}

// GET /api/drivers/:id/stats — one driver's public totals and rating.
func GetDriverStats(c *gin.Context) {
	svc := services.RankingService{
		ProfileRepo: repositories.ProfileRepository{},
		TripRepo:    repositories.TripRepository{},
		ReviewRepo:  repositories.ReviewRepository{},
	}
	stats, err := svc.DriverStats(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
