package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
	"github.com/emre/alumnihub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP statuses with the flat
// {"error": "..."} payload the frontend expects. Unclassified errors are
// logged and reported as an opaque 500.
func HandleAPIError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrAlumnusNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrForumNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrJobNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidIdentifier),
		errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	default:
		logger.Error().
			Err(err).
			Str("path", ctx.Request.URL.Path).
			Str("method", ctx.Request.Method).
			Msg("Unhandled API error")
	}

	ctx.JSON(status, dto.NewErrorResponse(message))
}
