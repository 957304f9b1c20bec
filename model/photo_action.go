package model

// PhotoAction is a per-account checklist entry keyed by an integer action
// code. The composite unique index makes creation an atomic upsert instead of
// a check-then-act sequence.
type PhotoAction struct {
	ID     uint `gorm:"primaryKey" json:"action_id"`
	UserID uint `gorm:"uniqueIndex:idx_photo_actions_user_action;not null" json:"user_id"`
	Action int  `gorm:"uniqueIndex:idx_photo_actions_user_action;not null" json:"action"`
	Done   bool `json:"done"`
}
