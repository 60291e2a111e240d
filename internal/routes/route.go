package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"venuebook/internal/container"
	"venuebook/internal/handlers"
	"venuebook/internal/middleware"
)

// SetupRoutes configures the API surface over the dependency container.
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "venuebook-api",
			})
		})
	}

	identityRoutes := v1.Group("/identities")
	{
		identityRoutes.POST("/", handlers.RegisterIdentity(container.IdentityService))
		identityRoutes.GET("/:user_id", handlers.LookupIdentity(container.IdentityService))
		identityRoutes.PATCH("/:user_id", handlers.UpdateIdentity(container.IdentityService))
	}

	venueRoutes := v1.Group("/venues")
	{
		venueRoutes.POST("/", handlers.CreateVenue(container.VenueService))
		venueRoutes.GET("/", handlers.ListVenues(container.VenueService))
		venueRoutes.GET("/:venue_id", handlers.GetVenue(container.VenueService))
		venueRoutes.PATCH("/:venue_id/availability", handlers.SetVenueAvailability(container.VenueService))
		venueRoutes.GET("/:venue_id/amenities", handlers.ListVenueAmenities(container.LinkService))
		venueRoutes.GET("/:venue_id/bookings", handlers.ListVenueBookings(container.BookingService))
	}

	amenityRoutes := v1.Group("/amenities")
	{
		amenityRoutes.POST("/", handlers.CreateAmenity(container.AmenityService))
		amenityRoutes.GET("/", handlers.ListAmenities(container.AmenityService))
		amenityRoutes.GET("/:amenity_id", handlers.GetAmenity(container.AmenityService))
		amenityRoutes.PATCH("/:amenity_id/availability", handlers.AdjustAmenityAvailability(container.AmenityService))
	}

	linkRoutes := v1.Group("/venue-amenities")
	{
		linkRoutes.POST("/", handlers.LinkAmenity(container.LinkService))
		linkRoutes.DELETE("/:link_id", handlers.UnlinkAmenity(container.LinkService))
		linkRoutes.PATCH("/:link_id/condition", handlers.SetWorkingCondition(container.LinkService))
	}

	bookingRoutes := v1.Group("/bookings")
	{
		bookingRoutes.POST("/", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/:booking_id", handlers.GetBooking(container.BookingService))
		bookingRoutes.PATCH("/:booking_id/status", handlers.UpdateBookingStatus(container.BookingService))
		bookingRoutes.POST("/:booking_id/conflict", handlers.FlagBookingConflict(container.BookingService))
		bookingRoutes.POST("/:booking_id/amenities", handlers.RequestAmenity(container.BookingService))
		bookingRoutes.GET("/:booking_id/amenities", handlers.ListBookingAmenities(container.BookingService))
		bookingRoutes.DELETE("/:booking_id/amenities/:amenity_id", handlers.ReleaseAmenity(container.BookingService))
	}

	return r
}
