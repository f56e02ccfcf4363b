package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	appProject "github.com/BOKA26/lovotech-nexus/pkg/app/project"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/github"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/metrics"
)

type syncProjectsHandler struct {
	logger *logrus.Logger
	syncer appProject.Syncer
}

func NewSyncProjectsHandler(logger *logrus.Logger, syncer appProject.Syncer) Handler {
	return &syncProjectsHandler{
		logger: logger,
		syncer: syncer,
	}
}

// Handle runs the full-replace synchronization. Authorization has already
// been enforced by the admin auth middleware; any failure past this point
// is a server error, never a partial sync.
func (h *syncProjectsHandler) Handle(c *fiber.Ctx) error {
	projects, err := h.syncer.Sync(c.Context())
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		if errors.Is(err, github.ErrTokenRequired) {
			h.logger.Error("github token is not configured")
		} else {
			h.logger.WithError(err).Error("project sync failed")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	metrics.SyncRunsTotal.WithLabelValues("success").Inc()
	metrics.SyncedProjects.Set(float64(len(projects)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"count":    len(projects),
		"projects": projects,
	})
}
