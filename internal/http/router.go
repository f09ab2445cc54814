package api

import (
	"log"
	stdhttp "net/http"

	intconfig "fletapp/internal/config"
	h "fletapp/internal/http/handlers"
	"fletapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authed := middleware.RequireAuth(env.JWTSecret)
	customerOnly := middleware.RequireRoles("customer")
	driverOnly := middleware.RequireRoles("driver")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", authed, h.Me)

		profiles := api.Group("/profiles", authed)
		profiles.GET("", h.ListProfiles)
		profiles.GET("/:id", h.GetProfile)
		profiles.PUT("/:id", h.UpdateProfile)

		// Static "available" cannot share the :id segment, so it hangs off
		// /api directly.
		api.GET("/available-trips", authed, driverOnly, h.GetAvailableTrips)

		trips := api.Group("/trips", authed)
		trips.GET("", h.GetMyTrips)
		trips.POST("", customerOnly, h.CreateTrip)
		trips.GET("/:id", h.GetTrip)
		trips.POST("/:id/accept", driverOnly, h.AcceptTrip)
		trips.POST("/:id/start", driverOnly, h.StartTrip)
		trips.POST("/:id/complete", driverOnly, h.CompleteTrip)
		trips.POST("/:id/pay", customerOnly, h.PayTrip)

		trips.GET("/:id/messages", h.GetTripMessages)
		trips.POST("/:id/messages", h.SendTripMessage)
		trips.GET("/:id/chat", h.TripChatSocket)

		trips.POST("/:id/payment-preference", customerOnly, h.CreatePaymentPreference)
		trips.POST("/:id/payment-confirm", customerOnly, h.ConfirmPayment)
		trips.GET("/:id/receipt", h.GetTripReceiptPDF)

		reviews := api.Group("/reviews", authed)
		reviews.POST("", customerOnly, h.CreateReview)

		drivers := api.Group("/drivers", authed)
		drivers.GET("/:id/reviews", h.GetDriverReviews)
		drivers.GET("/:id/stats", h.GetDriverStats)

		api.GET("/rankings", h.GetRankings)

		estimates := api.Group("/estimates", authed)
		estimates.POST("/trip", h.EstimateTrip)
		estimates.POST("/eta", h.EstimateDriverEta)
		estimates.POST("/vehicle-types", h.EstimateVehicleTypes)
		estimates.POST("/route", h.EstimateRoute)
	}

	return r
}
