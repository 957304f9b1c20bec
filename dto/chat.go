package dto

// ==================== CHAT REQUEST DTOs ====================

type CreateContactRequest struct {
	Name     string  `json:"name" validate:"required,max=100" example:"Bob"`
	Avatar   *string `json:"avatar,omitempty" example:"B"`
	Gradient *string `json:"gradient,omitempty"`
	Online   *bool   `json:"online,omitempty"`
	Status   *string `json:"status,omitempty" example:"offline"`
}

func (r CreateContactRequest) Validate() error {
	return GetValidator().Struct(r)
}

// Sent defaults to true: a missing flag means the account authored the
// message, matching the client contract.
type CreateMessageRequest struct {
	ContactID uint   `json:"contactId" validate:"required" example:"1"`
	Content   string `json:"content" validate:"required" example:"hi"`
	Sent      *bool  `json:"sent,omitempty"`
}

func (r CreateMessageRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== CHAT RESPONSE DTOs ====================

type ContactResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Gradient    string `json:"gradient"`
	Online      bool   `json:"online"`
	Status      string `json:"status"`
	LastMessage string `json:"last_message,omitempty"`
	UnreadCount int64  `json:"unread_count"`
}

type MessageResponse struct {
	ID        uint   `json:"id"`
	ContactID uint   `json:"contact_id"`
	Content   string `json:"content"`
	Sent      bool   `json:"sent"`
	Seen      bool   `json:"seen"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
	Cleared bool `json:"cleared,omitempty"`
}

// ==================== LEGACY BOARD DTOs ====================

type CreateBoardMessageRequest struct {
	Content string `json:"content" validate:"required"`
	UserID  *uint  `json:"userId,omitempty"`
}

func (r CreateBoardMessageRequest) Validate() error {
	return GetValidator().Struct(r)
}

type BoardMessageResponse struct {
	ID        uint   `json:"id"`
	UserID    *uint  `json:"user_id,omitempty"`
	Username  string `json:"username,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
