package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"storeops/internal/events"
)

// Audit publishes one command event per handled request. With a nil publisher
// it is a no-op.
func Audit(publisher *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publisher == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		command := c.FullPath()
		if command == "" {
			// Unmatched routes are not commands.
			return
		}
		publisher.Publish(c.Request.Context(), c.Request.Method+" "+command,
			c.Writer.Status(), time.Since(start))
	}
}
