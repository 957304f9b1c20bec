package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

type AuthHandler struct {
	authSvc AuthServiceInterface
}

func NewAuthHandler(authSvc AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// @Summary Register a new account
// @Description Create an account and provision its unlock flags and tutorial contact
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.RegisterResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	resp, err := h.authSvc.Register(req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, resp)
}

// @Summary Login
// @Description Authenticate and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	resp, token, err := h.authSvc.Login(req)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     shared.SessionCookie,
		Value:    token,
		MaxAge:   int(shared.SessionTTL.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})

	return shared.ResponseOK(c, resp)
}

// @Summary Logout
// @Description Destroy the current session and clear the cookie
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.DeleteResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(shared.SessionCookie)
	if token != "" {
		if err := h.authSvc.Logout(token); err != nil {
			return err
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     shared.SessionCookie,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})

	return shared.ResponseOK(c, dto.DeleteResponse{Success: true})
}
