package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/internal/models"
	"venuebook/internal/services"
)

func LinkAmenity(ls *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			VenueID   string `json:"venue_id" binding:"required"`
			AmenityID string `json:"amenity_id" binding:"required"`
			Inbuilt   bool   `json:"inbuilt"`
			Working   bool   `json:"working"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		link, err := ls.Link(c.Request.Context(), body.VenueID, body.AmenityID, body.Inbuilt, body.Working)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(link, "Amenity linked to venue"))
	}
}

func UnlinkAmenity(ls *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ls.Unlink(c.Request.Context(), c.Param("link_id")); err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Amenity unlinked from venue"))
	}
}

func SetWorkingCondition(ls *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Working *bool `json:"working" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		link, err := ls.SetWorkingCondition(c.Request.Context(), c.Param("link_id"), *body.Working)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(link, "Working condition updated"))
	}
}

func ListVenueAmenities(ls *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := ls.ListForVenue(c.Request.Context(), c.Param("venue_id"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(links, ""))
	}
}
