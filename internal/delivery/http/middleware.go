package delivery_http

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blogly-service/internal/logger"
	"blogly-service/internal/metrics"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)))
	}
}

func RequestMetrics(m metrics.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.IncrementHTTPRequests(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
		m.RecordHTTPRequestDuration(c.Request.Method, route, time.Since(start))
	}
}
