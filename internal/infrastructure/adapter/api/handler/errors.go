package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/api/dto"
)

// statusFor maps a domain error to an HTTP status and a client-safe message
func statusFor(err error) (int, string) {
	switch {
	case domainerr.IsRangeError(err):
		return http.StatusUnprocessableEntity, err.Error()
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound, "Interval not found"
	case errors.Is(err, domainerr.ErrDuplicateInterval):
		return http.StatusConflict, "Interval with this name already exists"
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the error response for err
func respondError(c *gin.Context, err error) {
	status, message := statusFor(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 for malformed input that never reached the domain
func respondBadRequest(c *gin.Context, cause error, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(cause),
		Message: message,
	})
}
