package model

import "time"

// Color is a bilingual color-reference entry (English / Spanish).
type Color struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Eng       string    `gorm:"column:eng;uniqueIndex;not null" json:"eng"`
	Sp        string    `gorm:"column:sp;uniqueIndex;not null" json:"sp"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
