package handlers

import (
	"net/http"

	"fletapp/internal/http/middleware"
	"fletapp/internal/repositories"
	"fletapp/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/trips/:id/receipt — PDF receipt of a paid trip (inline).
func GetTripReceiptPDF(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}

	svc := services.ReceiptService{
		TripRepo:    repositories.TripRepository{},
		ProfileRepo: repositories.ProfileRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.Generate(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
