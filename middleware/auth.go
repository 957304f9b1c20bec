package middleware

import (
	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"

	"github.com/lumina-arg/lumina_api/services"
	"github.com/lumina-arg/lumina_api/shared"
)

// AuthMiddleware guards player routes with the session cookie and admin
// routes with the operator bearer token.
type AuthMiddleware struct {
	context.DefaultService

	sessionSvc *services.SessionService
	jwtSvc     *services.JWTService
}

const AUTH_MIDDLEWARE_SVC = "auth"

func (svc AuthMiddleware) Id() string {
	return AUTH_MIDDLEWARE_SVC
}

func (svc *AuthMiddleware) Start() error {
	svc.sessionSvc = svc.Service(services.SESSION_SVC).(*services.SessionService)
	svc.jwtSvc = svc.Service(services.JWT_SVC).(*services.JWTService)
	return nil
}

// RequiredAuth resolves the session cookie and stashes the account identity
// in locals. Absent, stale and tampered tokens all produce the same 401.
func (svc *AuthMiddleware) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(shared.SessionCookie)
		if token == "" {
			return shared.NewUnauthorizedError("Not authenticated")
		}

		session, payload, err := svc.sessionSvc.Resolve(token)
		if err != nil {
			return err
		}
		if session == nil {
			return shared.NewUnauthorizedError("Not authenticated")
		}

		username, _ := payload["username"].(string)

		c.Locals(shared.UserID, session.UserID)
		c.Locals(shared.Username, username)
		c.Locals(shared.SessionID, session.ID)
		return c.Next()
	}
}

// AdminAuth verifies the operator JWT from the Authorization header.
func (svc *AuthMiddleware) AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.NewUnauthorizedError("Not authenticated")
		}

		operator, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil || operator == "" {
			return shared.NewUnauthorizedError("Not authenticated")
		}

		c.Locals(shared.Username, operator)
		return c.Next()
	}
}
