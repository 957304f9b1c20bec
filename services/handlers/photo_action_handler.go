package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

type PhotoActionHandler struct {
	photoSvc PhotoActionServiceInterface
}

func NewPhotoActionHandler(photoSvc PhotoActionServiceInterface) *PhotoActionHandler {
	return &PhotoActionHandler{
		photoSvc: photoSvc,
	}
}

// @Summary Create or update a photo action
// @Description Upsert the checklist entry for (account, action code)
// @Tags photo-actions
// @Accept json
// @Produce json
// @Param createPhotoActionRequest body dto.CreatePhotoActionRequest true "Action code and done flag"
// @Success 201 {object} dto.PhotoActionMutationResponse
// @Router /api/photo-actions [post]
func (h *PhotoActionHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	var req dto.CreatePhotoActionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	resp, err := h.photoSvc.CreateOrUpdate(userID, req)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if resp.Created {
		status = fiber.StatusCreated
	}
	return shared.ResponseJSON(c, status, resp)
}

// @Summary List photo actions
// @Description List the account's checklist entries
// @Tags photo-actions
// @Accept json
// @Produce json
// @Success 200 {object} dto.PhotoActionListResponse
// @Router /api/photo-actions [get]
func (h *PhotoActionHandler) List(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	actions, err := h.photoSvc.List(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.PhotoActionListResponse{
		Success: true,
		Actions: actions,
	})
}

// @Summary Complete a photo action
// @Description Mark the checklist entry for an action code as done
// @Tags photo-actions
// @Accept json
// @Produce json
// @Param action path int true "Action code"
// @Success 200 {object} dto.DeleteResponse
// @Router /api/photo-actions/{action}/done [post]
func (h *PhotoActionHandler) Complete(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	action, err := c.ParamsInt("action")
	if err != nil || action < 0 {
		return shared.NewBadRequestError(err, "Invalid action code")
	}

	if err := h.photoSvc.SetDone(userID, action); err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.DeleteResponse{Success: true})
}

// @Summary Delete photo actions
// @Description Delete one checklist entry by id or all of the account's entries
// @Tags photo-actions
// @Accept json
// @Produce json
// @Param id query int false "Action row id"
// @Param all query bool false "Delete every entry for the account"
// @Success 200 {object} dto.DeleteResponse
// @Router /api/photo-actions [delete]
func (h *PhotoActionHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	if actionID := c.QueryInt("id"); actionID > 0 {
		if err := h.photoSvc.DeleteOne(uint(actionID), userID); err != nil {
			return err
		}
		return shared.ResponseOK(c, dto.DeleteResponse{Success: true})
	}

	if c.Query("all") == "true" {
		if _, err := h.photoSvc.DeleteAll(userID); err != nil {
			return err
		}
		return shared.ResponseOK(c, dto.DeleteResponse{Success: true, Cleared: true})
	}

	return shared.NewBadRequestError(nil, "id or all=true is required")
}
