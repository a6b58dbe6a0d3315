package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hospital-api-server/internal/metrics"
)

// Metrics records every request against its route template, not the raw path.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
