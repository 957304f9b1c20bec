package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

type UnlockHandler struct {
	unlockSvc UnlockServiceInterface
}

func NewUnlockHandler(unlockSvc UnlockServiceInterface) *UnlockHandler {
	return &UnlockHandler{
		unlockSvc: unlockSvc,
	}
}

// @Summary Get unlock flags
// @Description Read the account's app unlock flags
// @Tags unlock
// @Accept json
// @Produce json
// @Success 200 {object} dto.UnlockResponse
// @Router /api/unlock-apps [get]
func (h *UnlockHandler) Get(c *fiber.Ctx) error {
	username := c.Locals(shared.Username).(string)

	resp, err := h.unlockSvc.Get(username)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, resp)
}

// @Summary Update unlock flags
// @Description Partially update the account's app unlock flags
// @Tags unlock
// @Accept json
// @Produce json
// @Param updateUnlockRequest body dto.UpdateUnlockRequest true "Flags to update"
// @Success 200 {object} dto.UnlockResponse
// @Router /api/unlock-apps [patch]
func (h *UnlockHandler) Update(c *fiber.Ctx) error {
	username := c.Locals(shared.Username).(string)

	var req dto.UpdateUnlockRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	resp, err := h.unlockSvc.Update(username, req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, resp)
}
