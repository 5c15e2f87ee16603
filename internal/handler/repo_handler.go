package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/trending-hub/server/internal/models"
	"github.com/ahmednasr/trending-hub/server/internal/service"
)

// RepoHandler wires HTTP → TrendingService.
type RepoHandler struct {
	svc service.TrendingService
}

// NewRepoHandler creates a new RepoHandler.
func NewRepoHandler(svc service.TrendingService) *RepoHandler {
	return &RepoHandler{svc: svc}
}

// Register mounts GET /repos, GET /repos/cached and POST /repos/refresh.
func (h *RepoHandler) Register(r fiber.Router) {
	r.Get("/repos", h.listRepos)
	r.Get("/repos/cached", h.cachedRepos)
	r.Post("/repos/refresh", h.refresh)
}

// listRepos handles GET /repos?language=go&since=weekly
func (h *RepoHandler) listRepos(c *fiber.Ctx) error {
	key := models.NewQueryKey(c.Query("language"), c.Query("since"))
	return c.JSON(h.svc.Scrape(c.UserContext(), key))
}

// cachedRepos handles GET /repos/cached
func (h *RepoHandler) cachedRepos(c *fiber.Ctx) error {
	repos, _ := h.svc.Cached()
	return c.JSON(repos)
}

// refresh handles POST /repos/refresh
func (h *RepoHandler) refresh(c *fiber.Ctx) error {
	n := h.svc.Refresh(c.UserContext())
	_, updatedAt := h.svc.Cached()

	return c.JSON(fiber.Map{
		"count":      n,
		"updated_at": timeOrNil(updatedAt),
	})
}
