package http

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/BOKA26/lovotech-nexus/pkg/handlers/http/request"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/aigateway"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/metrics"
	"github.com/BOKA26/lovotech-nexus/pkg/infra/ratelimit"
)

// Error messages are localized for the site's French-speaking audience.
const (
	msgRateLimited         = "Trop de requêtes. Veuillez réessayer dans une minute."
	msgUpstreamQuota       = "Limite de requêtes atteinte, veuillez réessayer plus tard."
	msgInsufficientCredits = "Crédits insuffisants, veuillez contacter l'administrateur."
	msgUpstreamError       = "Erreur de l'API IA"
	msgInternalError       = "Erreur interne du serveur"
)

type chatCompletionHandler struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
	client  aigateway.Client
}

func NewChatCompletionHandler(
	logger *logrus.Logger,
	limiter *ratelimit.Limiter,
	client aigateway.Client,
) Handler {
	return &chatCompletionHandler{
		logger:  logger,
		limiter: limiter,
		client:  client,
	}
}

func (h *chatCompletionHandler) Handle(c *fiber.Ctx) error {
	metrics.ChatRequestsTotal.Inc()

	clientID := clientIdentifier(c)
	if !h.limiter.Allow(clientID) {
		metrics.ChatRateLimitedTotal.Inc()
		h.logger.WithField("client", clientID).Warn("rate limit exceeded")
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": msgRateLimited})
	}

	var req request.ChatCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse chat request")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	body, err := h.client.StreamCompletion(c.Context(), req.Messages)
	if err != nil {
		return h.handleUpstreamError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")

	// Pipe the upstream body through chunk by chunk; the caller renders
	// partial output as it arrives.
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer func() { _ = body.Close() }()
		buf := make([]byte, 4096)
		for {
			n, readErr := body.Read(buf)
			if n > 0 {
				if _, writeErr := w.Write(buf[:n]); writeErr != nil {
					return
				}
				if flushErr := w.Flush(); flushErr != nil {
					return
				}
			}
			if readErr != nil {
				if readErr != io.EOF {
					h.logger.WithError(readErr).Error("error reading upstream stream")
				}
				return
			}
		}
	})

	return nil
}

func (h *chatCompletionHandler) handleUpstreamError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, aigateway.ErrQuotaExceeded):
		metrics.ChatUpstreamErrorsTotal.WithLabelValues("quota").Inc()
		h.logger.Warn("upstream rate limit reached")
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": msgUpstreamQuota})

	case errors.Is(err, aigateway.ErrInsufficientCredits):
		metrics.ChatUpstreamErrorsTotal.WithLabelValues("billing").Inc()
		h.logger.Warn("upstream credits exhausted")
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": msgInsufficientCredits})

	case errors.Is(err, aigateway.ErrMissingCredential):
		metrics.ChatUpstreamErrorsTotal.WithLabelValues("config").Inc()
		h.logger.Error("ai gateway api key is not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalError})

	default:
		metrics.ChatUpstreamErrorsTotal.WithLabelValues("transport").Inc()
		var upstreamErr *aigateway.UpstreamError
		if errors.As(err, &upstreamErr) {
			h.logger.WithFields(logrus.Fields{
				"status": upstreamErr.StatusCode,
				"body":   upstreamErr.Body,
			}).Error("ai gateway error")
		} else {
			h.logger.WithError(err).Error("chat completion failed")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgUpstreamError})
	}
}

// clientIdentifier derives the rate-limit bucket key from the first
// forwarded-address header present. Requests without one share the
// "unknown" bucket rather than being rejected.
func clientIdentifier(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}
