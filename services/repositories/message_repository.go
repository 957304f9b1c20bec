package repositories

import (
	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
)

// MessageRepository handles chat-message rows, the player-sent audit log and
// the legacy message board.
type MessageRepository struct {
	BaseRepository
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ==================== CHAT MESSAGES ====================

// ListByContact returns a thread in ascending id order, which is creation
// order for autoincrement keys.
func (ds *MessageRepository) ListByContact(contactID uint, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	q := ds.db.Where("contact_id = ?", contactID).Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (ds *MessageRepository) CreateChatMessage(message *model.ChatMessage) error {
	return ds.db.Create(message).Error
}

// GetChatMessageForUser resolves a message through its contact's owner, so a
// message in someone else's thread reads as absent.
func (ds *MessageRepository) GetChatMessageForUser(messageID, userID uint) (*model.ChatMessage, error) {
	var message model.ChatMessage
	err := ds.db.
		Joins("JOIN contacts ON contacts.id = chat_messages.contact_id").
		Where("chat_messages.id = ? AND contacts.user_id = ?", messageID, userID).
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (ds *MessageRepository) DeleteChatMessage(messageID uint) error {
	return ds.db.Where("id = ?", messageID).Delete(&model.ChatMessage{}).Error
}

func (ds *MessageRepository) ClearChatMessages(contactID uint) error {
	return ds.db.Where("contact_id = ?", contactID).Delete(&model.ChatMessage{}).Error
}

// MarkSeen flips every unseen received message on the thread. Sent messages
// are untouched; running it twice is a no-op.
func (ds *MessageRepository) MarkSeen(contactID uint) error {
	return ds.db.Model(&model.ChatMessage{}).
		Where("contact_id = ? AND sent = ? AND seen = ?", contactID, false, false).
		Update("seen", true).Error
}

func (ds *MessageRepository) UnreadCount(contactID uint) (int64, error) {
	var count int64
	err := ds.db.Model(&model.ChatMessage{}).
		Where("contact_id = ? AND sent = ? AND seen = ?", contactID, false, false).
		Count(&count).Error
	return count, err
}

// TotalUnreadCount recomputes the account-wide figure via a join on every
// call. There is no cached counter to fall out of sync.
func (ds *MessageRepository) TotalUnreadCount(userID uint) (int64, error) {
	var count int64
	err := ds.db.Model(&model.ChatMessage{}).
		Joins("JOIN contacts ON contacts.id = chat_messages.contact_id").
		Where("contacts.user_id = ? AND chat_messages.sent = ? AND chat_messages.seen = ?", userID, false, false).
		Count(&count).Error
	return count, err
}

// ==================== PLAYER-SENT AUDIT LOG ====================

func (ds *MessageRepository) AppendPlayerSentMessage(entry *model.PlayerSentMessage) error {
	return ds.db.Create(entry).Error
}

// ==================== LEGACY BOARD ====================

type BoardMessage struct {
	ID        uint   `json:"id"`
	UserID    *uint  `json:"user_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func (ds *MessageRepository) ListBoardMessages(limit int) ([]BoardMessage, error) {
	var messages []BoardMessage
	err := ds.db.Model(&model.Message{}).
		Select("messages.id, messages.user_id, COALESCE(users.username, '') AS username, messages.content, messages.created_at").
		Joins("LEFT JOIN users ON users.id = messages.user_id").
		Order("messages.created_at DESC").
		Limit(limit).
		Scan(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (ds *MessageRepository) CreateBoardMessage(message *model.Message) error {
	return ds.db.Create(message).Error
}

func (ds *MessageRepository) DeleteBoardMessage(messageID uint) error {
	return ds.db.Where("id = ?", messageID).Delete(&model.Message{}).Error
}
