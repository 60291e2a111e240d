package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/internal/models"
	"venuebook/internal/services"
)

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			RequesterID string           `json:"requester_id" binding:"required"`
			VenueID     string           `json:"venue_id" binding:"required"`
			Date        string           `json:"date" binding:"required"`
			Time        models.TimeRange `json:"time" binding:"required"`
			Description string           `json:"description" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), body.RequesterID, body.VenueID, body.Date, body.Time, body.Description)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking created successfully"))
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := bs.GetBooking(c.Request.Context(), c.Param("booking_id"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func ListVenueBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := bs.ListForVenue(c.Request.Context(), c.Param("venue_id"), c.Query("date"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func UpdateBookingStatus(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status models.BookingStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.UpdateStatus(c.Request.Context(), c.Param("booking_id"), body.Status)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}

func FlagBookingConflict(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := bs.FlagConflict(c.Request.Context(), c.Param("booking_id"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking flagged for adjudication"))
	}
}

func RequestAmenity(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			AmenityID string `json:"amenity_id" binding:"required"`
			Quantity  int    `json:"quantity" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		link, err := bs.RequestAmenity(c.Request.Context(), c.Param("booking_id"), body.AmenityID, body.Quantity)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(link, "Amenity requested"))
	}
}

func ReleaseAmenity(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := bs.ReleaseAmenity(c.Request.Context(), c.Param("booking_id"), c.Param("amenity_id"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Amenity released"))
	}
}

func ListBookingAmenities(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := bs.ListAmenitiesForBooking(c.Request.Context(), c.Param("booking_id"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(links, ""))
	}
}
