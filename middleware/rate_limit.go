package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lumina-arg/lumina_api/services"
	"github.com/lumina-arg/lumina_api/shared"
)

type RateLimitMiddleware struct {
	context.DefaultService

	rateSvc *services.RateLimitService
}

const RATE_LIMIT_MIDDLEWARE_SVC = "rate_limit"

func (svc RateLimitMiddleware) Id() string {
	return RATE_LIMIT_MIDDLEWARE_SVC
}

func (svc *RateLimitMiddleware) Start() error {
	svc.rateSvc = svc.Service(services.RATE_LIMIT_SVC).(*services.RateLimitService)
	return nil
}

// Limit applies the named fixed-window limit keyed by client IP.
func (svc *RateLimitMiddleware) Limit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := clientIP(c)

		allowed, retryAfter, err := svc.rateSvc.Allow(endpointType, ip)
		if err != nil {
			log.WithError(err).WithField("endpoint", endpointType).
				Warn("Rate limit check failed, allowing request")
			return c.Next()
		}

		if !allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(retryAfter/time.Second)))
			return shared.NewTooManyRequestsError("Too many requests")
		}

		return c.Next()
	}
}

func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.IP()
}
