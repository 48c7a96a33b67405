package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestMetrics counts every request by method and final status.
func (manager *Manager) RequestMetrics(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	manager.CounterRequests.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
	manager.HistRequestDuration.Observe(time.Since(start).Seconds())
	return err
}
