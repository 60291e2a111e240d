package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venuebook/internal/models"
	"venuebook/internal/services"
)

func CreateVenue(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := vs.CreateVenue(c.Request.Context(), &venue)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Venue created successfully"))
	}
}

func GetVenue(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venue, err := vs.GetVenue(c.Request.Context(), c.Param("venue_id"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func ListVenues(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := pagination(c)
		if !ok {
			return
		}

		venues, total, err := vs.ListVenues(c.Request.Context(), offset, limit)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(venues, page, limit, total))
	}
}

func SetVenueAvailability(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			AvailabilityStatus *bool `json:"availability_status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		venue, err := vs.SetAvailability(c.Request.Context(), c.Param("venue_id"), *body.AvailabilityStatus)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, "Venue availability updated"))
	}
}

// pagination reads offset/limit query params with the usual defaults,
// writing the error response itself when they are malformed.
func pagination(c *gin.Context) (offset, limit int, ok bool) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offset, limit, true
}
