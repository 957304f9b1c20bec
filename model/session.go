package model

import "time"

// Session is an opaque-token login session. Data holds an arbitrary JSON
// payload (at minimum the username, plus the user id after login).
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Data      string    `json:"data"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}
