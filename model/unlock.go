package model

// UnlockApp tracks which simulated phone apps are revealed for an account.
// One row per username, provisioned at registration.
type UnlockApp struct {
	Username      string `gorm:"primaryKey" json:"username"`
	Messages      bool   `json:"messages"`
	Gallery       bool   `json:"gallery"`
	MessagePreset int    `json:"message_preset"`
	MessageDone   bool   `json:"message_done"`
}

func (UnlockApp) TableName() string {
	return "unlock_apps"
}
