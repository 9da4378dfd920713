package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"clientregistro/monitoring"
)

// Metrics records per-request counters and latency histograms.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		path := c.Route().Path
		status := c.Response().StatusCode()

		monitoring.RequestsTotal.WithLabelValues(
			c.Method(),
			path,
			strconv.Itoa(status),
		).Inc()

		monitoring.RequestDuration.WithLabelValues(
			c.Method(),
			path,
		).Observe(duration)

		return err
	}
}
