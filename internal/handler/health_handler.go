package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/trending-hub/server/internal/service"
)

type HealthHandler struct {
	trending service.TrendingService
}

func NewHealthHandler(trending service.TrendingService) *HealthHandler {
	return &HealthHandler{trending: trending}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	repos, updatedAt := h.trending.Cached()

	return c.JSON(fiber.Map{
		"status": "ok",
		"cache": fiber.Map{
			"repos":      len(repos),
			"updated_at": timeOrNil(updatedAt),
		},
	})
}

// timeOrNil renders a zero time as JSON null.
func timeOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
