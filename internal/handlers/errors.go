package handlers

import (
	"errors"
	"net/http"

	"venuebook/internal/models"
)

// statusFor maps the domain error taxonomy onto HTTP status codes. Every
// domain error is recoverable by the caller; only unclassified errors
// surface as 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrDuplicateIdentity),
		errors.Is(err, models.ErrDuplicateLink),
		errors.Is(err, models.ErrSlotConflict),
		errors.Is(err, models.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
