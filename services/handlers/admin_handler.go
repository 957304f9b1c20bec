package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

type AdminHandler struct {
	adminSvc AdminServiceInterface
}

func NewAdminHandler(adminSvc AdminServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminSvc: adminSvc,
	}
}

// @Summary Operator login
// @Description Authenticate the operator account and return a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param adminLoginRequest body dto.AdminLoginRequest true "Operator credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	resp, err := h.adminSvc.Login(req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, resp)
}

// @Summary List tables
// @Description List live tables with columns and row counts
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.TableInfo
// @Router /api/admin/tables [get]
func (h *AdminHandler) ListTables(c *fiber.Ctx) error {
	tables, err := h.adminSvc.ListTables()
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, tables)
}

// @Summary Browse a table
// @Description Read the most recent rows of a table
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param name path string true "Table name"
// @Param limit query int false "Max rows returned"
// @Success 200 {object} dto.TableData
// @Router /api/admin/tables/{name} [get]
func (h *AdminHandler) BrowseTable(c *fiber.Ctx) error {
	table := c.Params("name")
	limit := c.QueryInt("limit")

	data, err := h.adminSvc.BrowseTable(table, limit)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, data)
}

// @Summary Run SQL
// @Description Execute a raw statement, dispatching select vs exec
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param sqlRequest body dto.SQLRequest true "Statement"
// @Success 200 {object} dto.SQLResult
// @Router /api/admin/sql [post]
func (h *AdminHandler) ExecSQL(c *fiber.Ctx) error {
	var req dto.SQLRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	result, err := h.adminSvc.ExecSQL(req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, result)
}

// @Summary Insert a row
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param insertRowRequest body dto.InsertRowRequest true "Table and column values"
// @Success 201 {object} dto.MutationResult
// @Router /api/admin/rows [post]
func (h *AdminHandler) InsertRow(c *fiber.Ctx) error {
	var req dto.InsertRowRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	result, err := h.adminSvc.InsertRow(req)
	if err != nil {
		return err
	}
	return shared.ResponseCreated(c, result)
}

// @Summary Update a row
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param updateRowRequest body dto.UpdateRowRequest true "Table, key and column values"
// @Success 200 {object} dto.MutationResult
// @Router /api/admin/rows [put]
func (h *AdminHandler) UpdateRow(c *fiber.Ctx) error {
	var req dto.UpdateRowRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	result, err := h.adminSvc.UpdateRow(req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, result)
}

// @Summary Delete a row
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param deleteRowRequest body dto.DeleteRowRequest true "Table and key"
// @Success 200 {object} dto.MutationResult
// @Router /api/admin/rows [delete]
func (h *AdminHandler) DeleteRow(c *fiber.Ctx) error {
	var req dto.DeleteRowRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	result, err := h.adminSvc.DeleteRow(req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, result)
}
