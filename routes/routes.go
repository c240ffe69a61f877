package routes

import (
	"net/http"
	"time"

	"homestay/handlers"
	"homestay/middleware"
	"homestay/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/auth", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetProfileHandler)
		api.PUT("/fcm-token", hb.User.UpdateFCMTokenHandler)
		api.POST("/signout", hb.User.RevokeAuthTokenHandler)
	}
}

// RegisterPropertyRoutes registers listing endpoints. Reading a single
// listing is public; everything else requires authentication.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.GET("/:id", hb.Property.GetPropertyHandler)

		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.Property.CreatePropertyHandler)
		api.GET("/mine", hb.Property.MyPropertiesHandler)
		api.PUT("/:id", hb.Property.UpdatePropertyHandler)
		api.DELETE("/:id", hb.Property.DeletePropertyHandler)
		api.GET("/:id/bookings", hb.Booking.PropertyBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		// Availability is a public, side-effect-free read.
		bookingGroup.POST("/availability", hb.Booking.CheckAvailability)

		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.GET("/mine", hb.Booking.MyBookings)
		bookingGroup.GET("/:id", hb.Booking.GetBooking)
		bookingGroup.PUT("/:id", hb.Booking.UpdateBooking)
		bookingGroup.POST("/:id/cancel", hb.Booking.CancelBooking)
		bookingGroup.POST("/:id/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.POST("/:id/complete", hb.Booking.CompleteBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		adminGroup.DELETE("/bookings/:id", hb.Booking.AdminDeleteBooking)
	}
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

	RegisterUserRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
