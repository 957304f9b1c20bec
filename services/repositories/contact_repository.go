package repositories

import (
	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
)

// ContactSummary is a contact row annotated with its thread state. Both
// extras are derived per query, never stored.
type ContactSummary struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Gradient    string `json:"gradient"`
	Online      bool   `json:"online"`
	Status      string `json:"status"`
	LastMessage string `json:"last_message"`
	UnreadCount int64  `json:"unread_count"`
}

// ContactRepository handles contact rows. Every lookup is scoped by the
// owning account id; a contact owned by someone else reads as absent.
type ContactRepository struct {
	BaseRepository
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ContactRepository) ListContacts(userID uint) ([]ContactSummary, error) {
	var summaries []ContactSummary
	err := ds.db.Model(&model.Contact{}).
		Select(`contacts.id, contacts.user_id, contacts.name, contacts.avatar, contacts.gradient,
			contacts.online, contacts.status,
			COALESCE((SELECT content FROM chat_messages WHERE chat_messages.contact_id = contacts.id ORDER BY chat_messages.id DESC LIMIT 1), '') AS last_message,
			(SELECT COUNT(*) FROM chat_messages WHERE chat_messages.contact_id = contacts.id AND chat_messages.sent = ? AND chat_messages.seen = ?) AS unread_count`,
			false, false).
		Where("contacts.user_id = ?", userID).
		Order("contacts.id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (ds *ContactRepository) GetContactByName(userID uint, name string) (*model.Contact, error) {
	var contact model.Contact
	if err := ds.db.Where("user_id = ? AND name = ?", userID, name).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (ds *ContactRepository) GetContact(contactID, userID uint) (*model.Contact, error) {
	var contact model.Contact
	if err := ds.db.Where("id = ? AND user_id = ?", contactID, userID).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (ds *ContactRepository) CreateContact(contact *model.Contact) error {
	return ds.db.Create(contact).Error
}
