package model

import "time"

type Contact struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	Avatar   string `gorm:"not null" json:"avatar"`
	Gradient string `gorm:"not null" json:"gradient"`
	Online   bool   `json:"online"`
	Status   string `json:"status"`
}

// ChatMessage belongs to a contact thread. Sent is true when the account
// authored the message, false when the simulated contact did. Seen only
// carries meaning on received messages.
type ChatMessage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContactID uint   `gorm:"index;not null" json:"contact_id"`
	Content   string `gorm:"not null" json:"content"`
	Sent      bool   `json:"sent"`
	Seen      bool   `json:"seen"`
}

// PlayerSentMessage is an append-only audit row recorded whenever an account
// sends a chat message. It is denormalized by username and never pruned when
// chat threads are cleared.
type PlayerSentMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"index;not null" json:"username"`
	ContactName string    `gorm:"not null" json:"contact_name"`
	Message     string    `gorm:"not null" json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message is the legacy global message board, kept alongside the chat tables.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
