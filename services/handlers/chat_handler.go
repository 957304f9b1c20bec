package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

type ChatHandler struct {
	chatSvc ChatServiceInterface
}

func NewChatHandler(chatSvc ChatServiceInterface) *ChatHandler {
	return &ChatHandler{
		chatSvc: chatSvc,
	}
}

// @Summary List contacts
// @Description List the account's contacts, fetch one by id, or return unread counts
// @Tags chat
// @Accept json
// @Produce json
// @Param id query int false "Contact id"
// @Param unreadCount query bool false "Return unread count instead of contacts"
// @Success 200 {array} dto.ContactResponse
// @Router /api/chat/contacts [get]
func (h *ChatHandler) GetContacts(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	contactID := c.QueryInt("id")

	if c.Query("unreadCount") == "true" {
		var count int64
		var err error
		if contactID > 0 {
			count, err = h.chatSvc.UnreadCount(uint(contactID), userID)
		} else {
			count, err = h.chatSvc.TotalUnreadCount(userID)
		}
		if err != nil {
			return err
		}
		return shared.ResponseOK(c, dto.UnreadCountResponse{UnreadCount: count})
	}

	if contactID > 0 {
		contact, err := h.chatSvc.GetContact(uint(contactID), userID)
		if err != nil {
			return err
		}
		return shared.ResponseOK(c, contact)
	}

	contacts, err := h.chatSvc.GetContacts(userID)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, contacts)
}

// @Summary Create contact
// @Description Add a contact to the account's chat list
// @Tags chat
// @Accept json
// @Produce json
// @Param createContactRequest body dto.CreateContactRequest true "Contact details"
// @Success 201 {object} dto.ContactResponse
// @Router /api/chat/contacts [post]
func (h *ChatHandler) CreateContact(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	contact, err := h.chatSvc.CreateContact(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, contact)
}

// @Summary List messages
// @Description List a contact's messages ascending and mark received ones seen
// @Tags chat
// @Accept json
// @Produce json
// @Param contactId query int true "Contact id"
// @Param limit query int false "Max messages returned (default 50)"
// @Success 200 {array} dto.MessageResponse
// @Router /api/chat/messages [get]
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	contactID := c.QueryInt("contactId")
	if contactID <= 0 {
		return shared.NewBadRequestError(nil, "contactId is required")
	}

	limit := c.QueryInt("limit")

	messages, err := h.chatSvc.GetMessages(uint(contactID), userID, limit)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, messages)
}

// @Summary Create message
// @Description Store a message on a contact's thread
// @Tags chat
// @Accept json
// @Produce json
// @Param createMessageRequest body dto.CreateMessageRequest true "Message details"
// @Success 201 {object} dto.MessageResponse
// @Router /api/chat/messages [post]
func (h *ChatHandler) CreateMessage(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.FirstValidationMessage(err))
	}

	message, err := h.chatSvc.CreateMessage(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, message)
}

// @Summary Delete messages
// @Description Delete one message by id or clear a contact's thread
// @Tags chat
// @Accept json
// @Produce json
// @Param id query int false "Message id"
// @Param contactId query int false "Contact id whose thread should be cleared"
// @Success 200 {object} dto.DeleteResponse
// @Router /api/chat/messages [delete]
func (h *ChatHandler) DeleteMessages(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(uint)

	if messageID := c.QueryInt("id"); messageID > 0 {
		if err := h.chatSvc.DeleteMessage(uint(messageID), userID); err != nil {
			return err
		}
		return shared.ResponseOK(c, dto.DeleteResponse{Success: true})
	}

	if contactID := c.QueryInt("contactId"); contactID > 0 {
		if err := h.chatSvc.ClearMessages(uint(contactID), userID); err != nil {
			return err
		}
		return shared.ResponseOK(c, dto.DeleteResponse{Success: true, Cleared: true})
	}

	return shared.NewBadRequestError(nil, "id or contactId is required")
}
