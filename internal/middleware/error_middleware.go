package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorly/internal/app/models/dto"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/logger"
)

var publicMessages = []struct {
	err     error
	message string
}{
	{apperrors.ErrProfileNotFound, "Profile not found"},
	{apperrors.ErrStudentNotFound, "Student profile not found"},
	{apperrors.ErrMentorNotFound, "Mentor profile not found"},
	{apperrors.ErrApplicationNotFound, "Mentor application not found"},
	{apperrors.ErrNotMentor, "User is not a mentor"},
	{apperrors.ErrMentorInactive, "Mentor account is not active"},
	{apperrors.ErrApplicationExists, "A mentor application is already pending or approved"},
	{apperrors.ErrInvalidDesiredRole, "desired_role must be one of: student, mentor"},
	{apperrors.ErrNegativePrice, "priceDollars must not be negative"},
	{apperrors.ErrPriceOutOfRange, "priceDollars is too large"},
}

func publicMessage(err error, fallback string) string {
	for _, m := range publicMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return fallback
}

// HandleAPIError maps an error to its status and JSON body. Unrecognised errors
// are logged and answered with fallback; their text never reaches the client.
func HandleAPIError(c *gin.Context, err error, fallback string) {
	var businessErr *apperrors.BusinessError
	var stepErr *apperrors.StepError
	var customErr *apperrors.CustomError

	switch {
	case errors.As(err, &businessErr):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(businessErr.Reason))
	case errors.As(err, &stepErr):
		logger.Error().Err(err).Str("step", stepErr.Step).Str("path", c.Request.URL.Path).Msg("Multi-step write failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(stepErr.Message).WithDetails(stepErr.Step))
	case errors.As(err, &customErr) && errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(customErr.Message))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(publicMessage(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(publicMessage(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(publicMessage(err, "Permission denied")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(publicMessage(err, "Conflict")))
	default:
		logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback))
	}
}

// Recovery turns a panic into a JSON 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	})
}

// NoRoute answers unknown paths with a JSON 404
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not found"))
	}
}
