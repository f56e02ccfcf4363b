package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BOKA26/lovotech-nexus/pkg/common"
	"github.com/BOKA26/lovotech-nexus/pkg/domain/iam/role"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/jwt"
)

// adminAuthMiddleware gates mutating endpoints: a bearer token must decode
// to a user holding the admin role. Every rejection happens before any
// handler runs, so no mutation can precede a failed gate.
type adminAuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
	roleRepo   role.Repository
}

func NewAdminAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
	roleRepo role.Repository,
) Middleware {
	return &adminAuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
		roleRepo:   roleRepo,
	}
}

func (m *adminAuthMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			m.logger.Debug("no authorization header provided")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "authentication required",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.jwtManager.DecodeToken(token)
		if err != nil {
			m.logger.WithError(err).Warn("token validation failed")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "invalid token",
			})
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			m.logger.WithError(err).Warn("token subject is not a user id")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "invalid token",
			})
		}

		isAdmin, err := m.roleRepo.HasRole(c.Context(), userID, role.RoleAdmin)
		if err != nil || !isAdmin {
			if err != nil {
				m.logger.WithError(err).Error("admin role lookup failed")
			} else {
				m.logger.WithField("user_id", userID).Warn("admin check failed")
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "admin role required",
			})
		}

		c.Locals(common.UserIDContextKey, userID)
		return c.Next()
	}
}
