package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/model"
	"github.com/lumina-arg/lumina_api/services/repositories"
	"github.com/lumina-arg/lumina_api/shared"
)

// ChatService is the access-controlled data layer for contacts and threads.
// Every operation takes the caller's account id and treats a contact owned by
// anyone else as nonexistent: ownership misses surface as "not found", never
// "forbidden", so existence never leaks through an error code.
type ChatService struct {
	context.DefaultService

	sqlSvc     SqlService
	monitorSvc *MonitoringService

	contactRepo *repositories.ContactRepository
	messageRepo *repositories.MessageRepository
	userRepo    *repositories.UserRepository
}

const CHAT_SVC = "chat_svc"

const tutorialWelcome = "Hey! Welcome. I'll walk you through how this phone works. Open my thread whenever you're ready."

// defaultThreadLimit caps GetMessages when the caller sends no limit.
const defaultThreadLimit = 50

func (svc ChatService) Id() string {
	return CHAT_SVC
}

func (svc *ChatService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ChatService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	if m, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitorSvc = m
	}
	db := svc.sqlSvc.Db()
	svc.contactRepo = repositories.NewContactRepository(db)
	svc.messageRepo = repositories.NewMessageRepository(db)
	svc.userRepo = repositories.NewUserRepository(db)
	return nil
}

// ==================== CONTACTS ====================

func (svc *ChatService) GetContacts(userID uint) ([]dto.ContactResponse, error) {
	summaries, err := svc.contactRepo.ListContacts(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	contacts := make([]dto.ContactResponse, 0, len(summaries))
	for _, s := range summaries {
		contacts = append(contacts, dto.ContactResponse{
			ID:          s.ID,
			Name:        s.Name,
			Avatar:      s.Avatar,
			Gradient:    s.Gradient,
			Online:      s.Online,
			Status:      s.Status,
			LastMessage: s.LastMessage,
			UnreadCount: s.UnreadCount,
		})
	}
	return contacts, nil
}

func (svc *ChatService) GetContact(contactID, userID uint) (*dto.ContactResponse, error) {
	contact, err := svc.contactRepo.GetContact(contactID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("Contact not found")
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	unread, err := svc.messageRepo.UnreadCount(contactID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.ContactResponse{
		ID:          contact.ID,
		Name:        contact.Name,
		Avatar:      contact.Avatar,
		Gradient:    contact.Gradient,
		Online:      contact.Online,
		Status:      contact.Status,
		UnreadCount: unread,
	}, nil
}

func (svc *ChatService) CreateContact(userID uint, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	contact := &model.Contact{
		UserID:   userID,
		Name:     req.Name,
		Avatar:   shared.DefaultAvatar,
		Gradient: shared.DefaultGradient,
		Online:   false,
		Status:   shared.DefaultStatus,
	}
	if req.Avatar != nil {
		contact.Avatar = *req.Avatar
	}
	if req.Gradient != nil {
		contact.Gradient = *req.Gradient
	}
	if req.Online != nil {
		contact.Online = *req.Online
	}
	if req.Status != nil {
		contact.Status = *req.Status
	}

	if err := svc.contactRepo.CreateContact(contact); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.ContactResponse{
		ID:       contact.ID,
		Name:     contact.Name,
		Avatar:   contact.Avatar,
		Gradient: contact.Gradient,
		Online:   contact.Online,
		Status:   contact.Status,
	}, nil
}

// SeedTutorialContact provisions the canonical Tutorial contact and its
// welcome message. Idempotent: an account that already has the contact is
// left alone. Invoked when the messages app unlocks and by the demo seeder.
func (svc *ChatService) SeedTutorialContact(userID uint) error {
	_, err := svc.contactRepo.GetContactByName(userID, "Tutorial")
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return svc.sqlSvc.HandleError(err)
	}

	contact := &model.Contact{
		UserID:   userID,
		Name:     "Tutorial",
		Avatar:   "T",
		Gradient: shared.DefaultGradient,
		Online:   true,
		Status:   "online",
	}
	if err := svc.contactRepo.CreateContact(contact); err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	welcome := &model.ChatMessage{
		ContactID: contact.ID,
		Content:   tutorialWelcome,
		Sent:      false,
		Seen:      false,
	}
	if err := svc.messageRepo.CreateChatMessage(welcome); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

// ==================== MESSAGES ====================

// GetMessages lists a thread in creation order, capped at 50 rows unless the
// caller asks for more, and as its one side effect marks every unseen
// received message as seen: opening the thread is what reads it.
func (svc *ChatService) GetMessages(contactID, userID uint, limit int) ([]dto.MessageResponse, error) {
	if _, err := svc.requireContact(contactID, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultThreadLimit
	}

	if err := svc.messageRepo.MarkSeen(contactID); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	messages, err := svc.messageRepo.ListByContact(contactID, limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.MessageResponse{
			ID:        m.ID,
			ContactID: m.ContactID,
			Content:   m.Content,
			Sent:      m.Sent,
			Seen:      m.Seen,
		})
	}
	return out, nil
}

// CreateMessage appends to the thread. Player-authored messages additionally
// land in the append-only audit log, resolved to username and contact name.
func (svc *ChatService) CreateMessage(userID uint, req dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	contact, err := svc.requireContact(req.ContactID, userID)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, shared.NewBadRequestError(nil, "Content is required")
	}

	sent := req.Sent == nil || *req.Sent

	message := &model.ChatMessage{
		ContactID: contact.ID,
		Content:   content,
		Sent:      sent,
		Seen:      false,
	}
	if err := svc.messageRepo.CreateChatMessage(message); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if svc.monitorSvc != nil {
		svc.monitorSvc.RecordChatMessage(sent)
	}

	if sent {
		user, err := svc.userRepo.GetUser(userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Failed to resolve username for audit log")
		} else {
			entry := &model.PlayerSentMessage{
				Username:    user.Username,
				ContactName: contact.Name,
				Message:     content,
				CreatedAt:   time.Now(),
			}
			if err := svc.messageRepo.AppendPlayerSentMessage(entry); err != nil {
				log.WithError(err).WithField("user_id", userID).Error("Failed to append audit log entry")
			}
		}
	}

	return &dto.MessageResponse{
		ID:        message.ID,
		ContactID: message.ContactID,
		Content:   message.Content,
		Sent:      message.Sent,
		Seen:      message.Seen,
	}, nil
}

// DeleteMessage removes one message, resolved through the caller's ownership
// of its thread.
func (svc *ChatService) DeleteMessage(messageID, userID uint) error {
	_, err := svc.messageRepo.GetChatMessageForUser(messageID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError("Message not found")
	}
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	if err := svc.messageRepo.DeleteChatMessage(messageID); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

// ClearMessages deletes a contact's whole thread. The audit log is untouched.
func (svc *ChatService) ClearMessages(contactID, userID uint) error {
	if _, err := svc.requireContact(contactID, userID); err != nil {
		return err
	}
	if err := svc.messageRepo.ClearChatMessages(contactID); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

// ==================== UNREAD TRACKING ====================

func (svc *ChatService) UnreadCount(contactID, userID uint) (int64, error) {
	if _, err := svc.requireContact(contactID, userID); err != nil {
		return 0, err
	}
	count, err := svc.messageRepo.UnreadCount(contactID)
	if err != nil {
		return 0, svc.sqlSvc.HandleError(err)
	}
	return count, nil
}

func (svc *ChatService) TotalUnreadCount(userID uint) (int64, error) {
	count, err := svc.messageRepo.TotalUnreadCount(userID)
	if err != nil {
		return 0, svc.sqlSvc.HandleError(err)
	}
	return count, nil
}

func (svc *ChatService) requireContact(contactID, userID uint) (*model.Contact, error) {
	contact, err := svc.contactRepo.GetContact(contactID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("Contact not found")
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return contact, nil
}
