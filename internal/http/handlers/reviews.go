package handlers

import (
	"net/http"

	"fletapp/internal/http/middleware"
	"fletapp/internal/repositories"
	"fletapp/internal/services"

	"github.com/gin-gonic/gin"
)

func reviewService(c *gin.Context) services.ReviewService {
	return services.ReviewService{
		ReviewRepo: repositories.ReviewRepository{},
		TripRepo:   repositories.TripRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// POST /api/reviews
func CreateReview(c *gin.Context) {
	var req services.NewReviewInput
	if !BindJSONOrError(c, &req) {
		return
	}
	review, err := reviewService(c).Create(middleware.GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "gracias por tu calificación", "review": review})
}

// GET /api/drivers/:id/reviews — a driver's reviews with their average.
func GetDriverReviews(c *gin.Context) {
	reviews, average, err := reviewService(c).ForDriver(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": average,
		"review_count":   len(reviews),
	})
}
