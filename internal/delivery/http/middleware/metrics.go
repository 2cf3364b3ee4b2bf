package middleware

import (
	"strconv"
	"time"

	"github.com/construction-map/internal/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// Metrics - счётчики и гистограмма запросов по шаблону маршрута
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		// шаблон маршрута (/api/v1/objects/:id), не сырой путь
		route := c.Route().Path

		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDurationMs.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}
