package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// The site is served from a different origin than the API, so both
// endpoints answer with a permissive, fixed CORS policy.
const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "GET, POST, OPTIONS"
)

type corsMiddleware struct{}

func NewCORSMiddleware() Middleware {
	return &corsMiddleware{}
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Method() == fiber.MethodOptions {
			c.Set("Access-Control-Allow-Methods", corsAllowMethods)
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
