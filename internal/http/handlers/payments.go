package handlers

import (
	"net/http"

	"fletapp/internal/http/middleware"
	"fletapp/internal/repositories"
	"fletapp/internal/services"

	"github.com/gin-gonic/gin"
)

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		TripRepo:    repositories.TripRepository{},
		MercadoPago: mercadoPago,
		RequestID:   middleware.GetRequestID(c),
	}
}

// POST /api/trips/:id/payment-preference — opens a Mercado Pago checkout
// for a completed trip.
func CreatePaymentPreference(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	preferenceID, err := paymentService(c).CreatePreference(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"preference_id": preferenceID})
}

type confirmPaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// POST /api/trips/:id/payment-confirm — called by the frontend after the
// gateway redirect. Only payment_status=success settles the trip.
func ConfirmPayment(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	var req confirmPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := paymentService(c).Confirm(middleware.GetUserID(c), id, req.PaymentStatus)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
