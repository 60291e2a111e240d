package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/internal/models"
	"venuebook/internal/services"
)

func CreateAmenity(as *services.AmenityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var amenity models.Amenity
		if err := c.ShouldBindJSON(&amenity); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := as.CreateAmenity(c.Request.Context(), &amenity)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Amenity created successfully"))
	}
}

func GetAmenity(as *services.AmenityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		amenity, err := as.GetAmenity(c.Request.Context(), c.Param("amenity_id"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(amenity, ""))
	}
}

func ListAmenities(as *services.AmenityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := pagination(c)
		if !ok {
			return
		}

		amenities, total, err := as.ListAmenities(c.Request.Context(), offset, limit)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(amenities, page, limit, total))
	}
}

func AdjustAmenityAvailability(as *services.AmenityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Delta int `json:"delta" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		amenity, err := as.AdjustCurrentAvailability(c.Request.Context(), c.Param("amenity_id"), body.Delta)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(amenity, "Amenity availability adjusted"))
	}
}
