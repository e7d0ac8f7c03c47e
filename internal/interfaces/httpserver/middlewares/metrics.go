package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kbchat/internal/infrastructure/metrics"
)

// Metrics records HTTP request metrics after each request completes.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}

		metrics.RecordHTTPRequest(c.Request.Method, endpoint, status, time.Since(start).Seconds())
	}
}
