package middleware

import (
	"strconv"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request durations per method/route/status. The
// route label uses the gin template path, not the raw URL, to keep the
// cardinality bounded.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
