package middleware

import (
	"time"

	"product-catalog-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies labelled by route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
