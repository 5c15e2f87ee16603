// Package middleware holds fiber middleware shared by every route.
package middleware

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// Logging logs one line per request: method, path, status and latency.
// Query strings and bodies are never logged; they may carry credentials.
func Logging(logger *log.Logger) fiber.Handler {
	l := logger.WithPrefix("http")

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		kv := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).Round(time.Microsecond),
		}
		switch {
		case status >= 500:
			l.Error("request", kv...)
		case status >= 400:
			l.Warn("request", kv...)
		default:
			l.Info("request", kv...)
		}
		return err
	}
}
