package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/payrail/payment-orchestrator/internal/metrics"
)

// Metrics records a counter and latency histogram per request, keyed
// by the route template so path parameters don't explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
		metrics.RequestDuration.WithLabelValues(route, status).Observe(time.Since(start).Seconds())
	}
}
