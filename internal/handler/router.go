package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/trending-hub/server/internal/service"
)

// RegisterRoutes mounts every API endpoint on app.
func RegisterRoutes(app *fiber.App,
	trendingSvc service.TrendingService,
	githubSvc service.GitHubService,
) {
	NewRepoHandler(trendingSvc).Register(app)
	NewStarHandler(githubSvc).Register(app)
	NewReadmeHandler(githubSvc).Register(app)
	NewHealthHandler(trendingSvc).Register(app)
}

// ErrorHandler renders every error as {"error": message}.
// Plug it into fiber.Config so fiber's own errors (404, 405) share the shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}
