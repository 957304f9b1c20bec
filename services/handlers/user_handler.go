package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

// UserHandler serves the legacy account directory and the global message
// board that predate the per-contact chat surface.
type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// @Summary List accounts
// @Description List accounts, or look one up by id or username
// @Tags users
// @Accept json
// @Produce json
// @Param id query int false "Account id"
// @Param username query string false "Username"
// @Success 200 {array} dto.UserResponse
// @Router /api/users [get]
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	if id := c.QueryInt("id"); id > 0 {
		user, err := h.userSvc.GetUser(uint(id))
		if err != nil {
			return err
		}
		return shared.ResponseOK(c, user)
	}

	if username := c.Query("username"); username != "" {
		user, err := h.userSvc.GetUserByUsername(username)
		if err != nil {
			return err
		}
		return shared.ResponseOK(c, user)
	}

	users, err := h.userSvc.ListUsers()
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, users)
}

// @Summary Create an account entry
// @Description Create a passwordless directory entry
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body dto.CreateUserRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	user, err := h.userSvc.CreateUser(req)
	if err != nil {
		return err
	}
	return shared.ResponseCreated(c, user)
}

// @Summary List board messages
// @Description List global board messages newest first, joined with usernames
// @Tags messages
// @Accept json
// @Produce json
// @Param limit query int false "Max messages returned"
// @Success 200 {array} dto.BoardMessageResponse
// @Router /api/messages [get]
func (h *UserHandler) GetBoardMessages(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")

	messages, err := h.userSvc.ListBoardMessages(limit)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, messages)
}

// @Summary Post a board message
// @Tags messages
// @Accept json
// @Produce json
// @Param createBoardMessageRequest body dto.CreateBoardMessageRequest true "Message details"
// @Success 201 {object} dto.BoardMessageResponse
// @Router /api/messages [post]
func (h *UserHandler) CreateBoardMessage(c *fiber.Ctx) error {
	var req dto.CreateBoardMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	message, err := h.userSvc.CreateBoardMessage(req)
	if err != nil {
		return err
	}
	return shared.ResponseCreated(c, message)
}

// @Summary Delete a board message
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "Message id"
// @Success 200 {object} dto.DeleteResponse
// @Router /api/messages/{id} [delete]
func (h *UserHandler) DeleteBoardMessage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return shared.NewBadRequestError(err, "Invalid message id")
	}

	if err := h.userSvc.DeleteBoardMessage(uint(id)); err != nil {
		return err
	}
	return shared.ResponseOK(c, dto.DeleteResponse{Success: true})
}
