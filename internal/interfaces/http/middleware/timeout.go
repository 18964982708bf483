// internal/interfaces/http/middleware/timeout.go
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout middleware to prevent long-running requests
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Next()
		}()

		select {
		case <-done:
			// Request completed normally
		case <-ctx.Done():
			// The handler may have started writing before the deadline hit;
			// only emit the timeout body on an untouched response.
			if !c.Writer.Written() {
				c.JSON(http.StatusRequestTimeout, gin.H{
					"error": "Request timeout",
				})
			}
			c.Abort()
		}
	}
}
