package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

type ColorHandler struct {
	colorSvc ColorServiceInterface
}

func NewColorHandler(colorSvc ColorServiceInterface) *ColorHandler {
	return &ColorHandler{
		colorSvc: colorSvc,
	}
}

// @Summary List colors
// @Tags colors
// @Accept json
// @Produce json
// @Success 200 {array} dto.ColorResponse
// @Router /api/colors [get]
func (h *ColorHandler) List(c *fiber.Ctx) error {
	colors, err := h.colorSvc.List()
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, colors)
}

// @Summary Get a color
// @Tags colors
// @Accept json
// @Produce json
// @Param id path int true "Color id"
// @Success 200 {object} dto.ColorResponse
// @Router /api/colors/{id} [get]
func (h *ColorHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return shared.NewBadRequestError(err, "Invalid color id")
	}

	color, err := h.colorSvc.Get(uint(id))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, color)
}

// @Summary Create a color
// @Tags colors
// @Accept json
// @Produce json
// @Param createColorRequest body dto.CreateColorRequest true "English and Spanish names"
// @Success 201 {object} dto.ColorResponse
// @Router /api/colors [post]
func (h *ColorHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateColorRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	color, err := h.colorSvc.Create(req)
	if err != nil {
		return err
	}
	return shared.ResponseCreated(c, color)
}

// @Summary Update a color
// @Tags colors
// @Accept json
// @Produce json
// @Param id path int true "Color id"
// @Param updateColorRequest body dto.UpdateColorRequest true "English and Spanish names"
// @Success 200 {object} dto.ColorResponse
// @Router /api/colors/{id} [put]
func (h *ColorHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return shared.NewBadRequestError(err, "Invalid color id")
	}

	var req dto.UpdateColorRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	color, err := h.colorSvc.Update(uint(id), req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, color)
}

// @Summary Delete a color
// @Tags colors
// @Accept json
// @Produce json
// @Param id path int true "Color id"
// @Success 200 {object} dto.DeleteResponse
// @Router /api/colors/{id} [delete]
func (h *ColorHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return shared.NewBadRequestError(err, "Invalid color id")
	}

	if err := h.colorSvc.Delete(uint(id)); err != nil {
		return err
	}
	return shared.ResponseOK(c, dto.DeleteResponse{Success: true})
}

// @Summary Search colors
// @Description Partial match on the English or Spanish name
// @Tags colors
// @Accept json
// @Produce json
// @Param eng query string false "English name fragment"
// @Param sp query string false "Spanish name fragment"
// @Success 200 {array} dto.ColorResponse
// @Router /api/colors/search [get]
func (h *ColorHandler) Search(c *fiber.Ctx) error {
	eng := c.Query("eng")
	sp := c.Query("sp")
	if eng == "" && sp == "" {
		return shared.NewBadRequestError(nil, "eng or sp is required")
	}

	colors, err := h.colorSvc.Search(eng, sp)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, colors)
}
