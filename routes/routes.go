package routes

import (
	"net/http"
	"time"

	"dormhub/handlers"
	"dormhub/middleware"
	"dormhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoomRoutes registers the public room catalogue endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.ListRoomsHandler)
		api.GET("/availability", hb.GetAvailabilityHandler)
		api.GET("/:id", hb.GetRoomHandler)
	}
}

// RegisterReservationRoutes registers the tenant reservation endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.UserService))
		api.POST("", hb.CreateReservationHandler)
		api.GET("", hb.ListMyReservationsHandler)
		api.GET("/progress", hb.GetProgressHandler)
		api.GET("/:id", hb.GetReservationHandler)
		api.PUT("/:id/schedule-visit", hb.ScheduleVisitHandler)
		api.PUT("/:id/application", hb.SubmitApplicationHandler)
		api.PUT("/:id/payment", hb.SubmitPaymentHandler)
		api.DELETE("/:id", hb.CancelReservationHandler)
	}
}

// RegisterInquiryRoutes registers the public contact-form endpoint.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inquiries")
	{
		api.POST("", hb.SubmitInquiryHandler)
	}
}

// RegisterProfileRoutes registers the tenant profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.UserService))
		api.GET("", hb.GetProfileHandler)
		api.PUT("", hb.UpdateProfileHandler)
	}
}

// RegisterStorageRoutes registers the upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.UserService))
		api.POST("/payment-proof", hb.UploadPaymentProofHandler)
		api.POST("/room-photo", middleware.AdminOnlyMiddleware(), hb.UploadRoomPhotoHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.FirebaseAuthMiddleware(hb.UserService))
		adminGroup.Use(middleware.AdminOnlyMiddleware())

		adminGroup.GET("/reservations", hb.Admin.ListReservations)
		adminGroup.PUT("/reservations/:id/approve-schedule", hb.Admin.ApproveSchedule)
		adminGroup.PUT("/reservations/:id/reject-schedule", hb.Admin.RejectSchedule)
		adminGroup.PUT("/reservations/:id/complete-visit", hb.Admin.CompleteVisit)
		adminGroup.PUT("/reservations/:id/verify-payment", hb.Admin.VerifyPayment)
		adminGroup.DELETE("/reservations/:id", hb.Admin.CancelReservation)

		adminGroup.POST("/rooms", hb.CreateRoomHandler)
		adminGroup.PUT("/rooms/:id", hb.UpdateRoomHandler)
		adminGroup.DELETE("/rooms/:id", hb.DeleteRoomHandler)

		adminGroup.GET("/inquiries", hb.ListInquiriesHandler)
		adminGroup.PUT("/inquiries/:id/resolve", hb.ResolveInquiryHandler)
		adminGroup.DELETE("/inquiries/:id", hb.DeleteInquiryHandler)

		adminGroup.GET("/users", hb.Admin.ListUsers)
		adminGroup.PUT("/users/:id/role", hb.Admin.SetUserRole)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoomRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
