// Package responses contains HTTP response DTOs and error mapping helpers.
package responses

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"kbchat/internal/domain/thread"
	"kbchat/internal/utils/platformerrors"
)

// HandleError handles errors and writes appropriate HTTP responses.
// It maps store-specific errors and platform errors to HTTP status codes.
func HandleError(c *gin.Context, err error, message string) {
	logger := log.With().Str("path", c.Request.URL.Path).Logger()

	if errors.Is(err, thread.ErrNotFound) {
		platformerrors.WriteNotFound(c, message)
		return
	}
	if errors.Is(err, thread.ErrForbidden) {
		platformerrors.WriteForbidden(c, message)
		return
	}
	if errors.Is(err, thread.ErrUnavailable) {
		platformerrors.WriteUnavailable(c, message)
		return
	}

	platformerrors.WriteError(c, err, logger)
}

// HandleNewError creates and writes a new typed error response.
// Use this for route-level errors like validation failures.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string) {
	status := platformerrors.ErrorTypeToHTTPStatus(errorType)
	c.JSON(status, platformerrors.HTTPErrorResponse{
		Error: &platformerrors.HTTPErrorDetail{
			Message: message,
			Type:    platformerrors.ErrorTypeToString(errorType),
		},
	})
}
