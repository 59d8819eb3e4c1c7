package http

import (
	"errors"
	"net/http"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Message string `json:"message" example:"Bike not found"`
}

type successResponse struct {
	Message string `json:"message" example:"Bike rented successfully"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrBikeNotFound),
		errors.Is(err, domain.ErrCatalogNotFound),
		errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidBuilder),
		errors.Is(err, domain.ErrInvalidBike),
		errors.Is(err, domain.ErrInvalidCatalog),
		errors.Is(err, domain.ErrInvalidBikeType),
		errors.Is(err, domain.ErrInputValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBikeUnavailable),
		errors.Is(err, domain.ErrBikeNotRented),
		errors.Is(err, domain.ErrDuplicateBike):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func outcomeFor(err error) string {
	if err == nil {
		return "success"
	}
	if statusFor(err) >= http.StatusInternalServerError {
		return "error"
	}
	return "rejected"
}
