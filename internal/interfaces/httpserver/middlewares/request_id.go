package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header key for request ID.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the context key for request ID.
	RequestIDKey = "request_id"

	// ClientIDHeader carries the opaque caller identity used for thread
	// ownership checks. The value is whatever the deployment's front end
	// chooses to send; this service never interprets it.
	ClientIDHeader = "X-Client-Id"
	// ClientIDKey is the context key for the caller identity.
	ClientIDKey = "client_id"
)

// RequestID middleware generates or propagates a unique request ID.
// If the incoming request has an X-Request-ID header, it uses that value.
// Otherwise, it generates a new UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// ClientID extracts the caller identity header into the request context.
// An absent header leaves the identity empty, which the store treats as
// an anonymous caller.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ClientIDKey, c.GetHeader(ClientIDHeader))
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

// GetClientID retrieves the caller identity from the context.
func GetClientID(c *gin.Context) string {
	if id, exists := c.Get(ClientIDKey); exists {
		if clientID, ok := id.(string); ok {
			return clientID
		}
	}
	return ""
}
