package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/trending-hub/server/internal/service"
)

// ReadmeHandler wires HTTP → GitHubService.FetchReadme.
type ReadmeHandler struct {
	svc service.GitHubService
}

// NewReadmeHandler creates a ReadmeHandler instance.
func NewReadmeHandler(svc service.GitHubService) *ReadmeHandler {
	return &ReadmeHandler{svc: svc}
}

// Register mounts GET /readme.
func (h *ReadmeHandler) Register(r fiber.Router) {
	r.Get("/readme", h.getReadme)
}

// getReadme handles GET /readme?owner=octocat&repo=Hello-World
// It always answers 200; a missing README is {"readme": null}.
func (h *ReadmeHandler) getReadme(c *fiber.Ctx) error {
	text, ok := h.svc.FetchReadme(c.UserContext(), c.Query("owner"), c.Query("repo"), bearerToken(c))
	if !ok {
		return c.JSON(fiber.Map{"readme": nil})
	}
	return c.JSON(fiber.Map{"readme": text})
}

// bearerToken extracts an optional "Bearer <t>" or "token <t>" credential.
func bearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	for _, scheme := range []string{"Bearer ", "bearer ", "token "} {
		if strings.HasPrefix(auth, scheme) {
			return strings.TrimSpace(auth[len(scheme):])
		}
	}
	return ""
}
