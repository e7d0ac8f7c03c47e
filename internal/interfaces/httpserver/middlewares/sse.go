package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PrepareSSE switches the response into server-sent event mode and hands
// back the flusher the event writer needs. The second return is false
// when the underlying writer cannot flush, in which case streaming is
// not possible on this connection.
func PrepareSSE(c *gin.Context) (http.Flusher, bool) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	return flusher, ok
}
