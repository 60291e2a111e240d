package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/internal/models"
	"venuebook/internal/services"
)

func RegisterIdentity(is *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var identity models.Identity
		if err := c.ShouldBindJSON(&identity); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := is.Register(c.Request.Context(), &identity)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Identity registered successfully"))
	}
}

func LookupIdentity(is *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := is.Lookup(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(identity, ""))
	}
}

func UpdateIdentity(is *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update map[string]interface{}
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		identity, err := is.Update(c.Request.Context(), c.Param("user_id"), update)
		if err != nil {
			c.JSON(statusFor(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(identity, "Identity updated successfully"))
	}
}
