package router

import (
	"net/http"

	"github.com/cuongbtq/cleanmatch-be/internal/api/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "marketplace-api-service",
		})
	})

	authHandler := handler.NewAuthHandler(deps)
	userHandler := handler.NewUserHandler(deps)
	jobHandler := handler.NewJobHandler(deps)
	offerHandler := handler.NewOfferHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		users := v1.Group("/users")
		{
			users.PUT("/me", userHandler.UpdateUser)
			users.POST("/me/payment-methods", userHandler.AddPaymentMethod)
			users.DELETE("/me/payment-methods/:index", userHandler.RemovePaymentMethod)
			users.GET("/:user_id", userHandler.GetUser)
		}

		jobs := v1.Group("/jobs")
		{
			jobs.POST("", jobHandler.CreateJob)
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:job_id", jobHandler.GetJob)
			jobs.PUT("/:job_id/status", jobHandler.UpdateStatus)
			jobs.POST("/:job_id/accept", jobHandler.AcceptJob)
			jobs.POST("/:job_id/reviews", jobHandler.SubmitReview)
			jobs.GET("/:job_id/offers", offerHandler.ListOffersForJob)
		}

		offers := v1.Group("/offers")
		{
			offers.POST("", offerHandler.CreateOffer)
			offers.GET("", offerHandler.ListMyOffers)
			offers.POST("/:offer_id/accept", offerHandler.AcceptOffer)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", userHandler.ListNotifications)
			notifications.POST("/:id/read", userHandler.MarkNotificationRead)
		}

		v1.GET("/services", jobHandler.ListServices)

		// Seam for the external verification authority
		v1.PUT("/admin/users/:user_id/verification", userHandler.SetVerification)
	}

	return r
}
