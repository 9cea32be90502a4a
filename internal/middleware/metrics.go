// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-api/internal/metrics"
)

// apiPrefix is dropped from route labels so the /posts and /api/v1/posts mounts
// of the same handler share one series.
const apiPrefix = "/api/v1"

// Metrics records request count, latency and in-flight requests per route.
// Routes are labelled by template (/posts/:id); unknown paths share the
// "unmatched" label. /metrics and /live are not recorded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		route, observed := routeLabel(c.FullPath())
		if !observed {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(method, route))
	}
}

func routeLabel(fullPath string) (string, bool) {
	switch fullPath {
	case "/metrics", "/live":
		return "", false
	case "":
		return "unmatched", true
	}
	if rest, ok := strings.CutPrefix(fullPath, apiPrefix); ok && strings.HasPrefix(rest, "/") {
		return rest, true
	}
	return fullPath, true
}
