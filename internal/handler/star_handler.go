package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/trending-hub/server/internal/github"
	"github.com/ahmednasr/trending-hub/server/internal/service"
)

// StarHandler wires HTTP → GitHubService.StarRepository.
type StarHandler struct {
	svc service.GitHubService
}

// NewStarHandler returns a struct pointer so you can call Register on it.
func NewStarHandler(svc service.GitHubService) *StarHandler {
	return &StarHandler{svc: svc}
}

// Register mounts POST /star.
func (h *StarHandler) Register(r fiber.Router) {
	r.Post("/star", h.star)
}

type starRequest struct {
	Owner string `json:"owner" form:"owner"`
	Repo  string `json:"repo"  form:"repo"`
	Token string `json:"token" form:"token"`
}

// star handles POST /star  { "owner": "...", "repo": "...", "token": "..." }
//
// Every failure is a 500. The "code" field tells a missing or rejected
// credential apart from other failures.
func (h *StarHandler) star(c *fiber.Ctx) error {
	var req starRequest
	if err := c.BodyParser(&req); err != nil {
		return starFailure(c, "invalid_input", "invalid request body")
	}

	ok, err := h.svc.StarRepository(c.UserContext(), req.Owner, req.Repo, req.Token)
	if err != nil {
		return starFailure(c, starErrorCode(err), err.Error())
	}

	return c.JSON(fiber.Map{"starred": ok})
}

func starErrorCode(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, github.ErrUnauthorized):
		return "unauthorized"
	default:
		return "upstream"
	}
}

func starFailure(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg, "code": code})
}
