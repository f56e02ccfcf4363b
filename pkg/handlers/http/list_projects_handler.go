package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/BOKA26/lovotech-nexus/pkg/domain/project"
)

type listProjectsHandler struct {
	logger *logrus.Logger
	repo   project.Repository
}

func NewListProjectsHandler(logger *logrus.Logger, repo project.Repository) Handler {
	return &listProjectsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listProjectsHandler) Handle(c *fiber.Ctx) error {
	projects, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list projects")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list projects"})
	}
	return c.Status(fiber.StatusOK).JSON(projects)
}
