package platformerrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPErrorResponse is the JSON envelope every error response uses.
type HTTPErrorResponse struct {
	Error *HTTPErrorDetail `json:"error"`
}

// HTTPErrorDetail is the body of an error response.
type HTTPErrorDetail struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
}

func writeDetail(c *gin.Context, status int, errType, message string) {
	c.JSON(status, HTTPErrorResponse{
		Error: &HTTPErrorDetail{
			Message: message,
			Type:    errType,
		},
	})
}

// WriteHTTPError logs a PlatformError and renders it with the status code
// its type maps to.
func WriteHTTPError(c *gin.Context, err *PlatformError, log zerolog.Logger) {
	if err == nil {
		writeDetail(c, http.StatusInternalServerError, "internal_error", "unknown error")
		return
	}

	LogError(log, err)
	c.JSON(ErrorTypeToHTTPStatus(err.Type), HTTPErrorResponse{
		Error: &HTTPErrorDetail{
			Message:   err.Message,
			Type:      ErrorTypeToString(err.Type),
			RequestID: err.RequestID,
		},
	})
}

// WriteError renders any error. PlatformErrors keep their typed status;
// everything else becomes a 500.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	if err == nil {
		writeDetail(c, http.StatusInternalServerError, "internal_error", "unknown error")
		return
	}
	var pe *PlatformError
	if errors.As(err, &pe) {
		WriteHTTPError(c, pe, log)
		return
	}
	writeDetail(c, http.StatusInternalServerError, "internal_error", err.Error())
}

// WriteNotFound renders a 404.
func WriteNotFound(c *gin.Context, message string) {
	writeDetail(c, http.StatusNotFound, "not_found_error", message)
}

// WriteValidationError renders a 400.
func WriteValidationError(c *gin.Context, message string) {
	writeDetail(c, http.StatusBadRequest, "validation_error", message)
}

// WriteForbidden renders a 403.
func WriteForbidden(c *gin.Context, message string) {
	writeDetail(c, http.StatusForbidden, "forbidden_error", message)
}

// WriteUnavailable renders a 503 for transient storage failures that are
// safe to retry.
func WriteUnavailable(c *gin.Context, message string) {
	writeDetail(c, http.StatusServiceUnavailable, "unavailable_error", message)
}

// ErrorTypeToString converts an ErrorType to the snake_case form used in
// API responses.
func ErrorTypeToString(t ErrorType) string {
	switch t {
	case ErrorTypeNotFound:
		return "not_found_error"
	case ErrorTypeValidation:
		return "validation_error"
	case ErrorTypeForbidden:
		return "forbidden_error"
	case ErrorTypeUnavailable:
		return "unavailable_error"
	case ErrorTypeExternal:
		return "external_error"
	default:
		return "internal_error"
	}
}
