package dto

// ==================== AUTHENTICATION REQUEST DTOs ====================

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=30" example:"alice"`
	Password string  `json:"password" validate:"required,min=4" example:"secret1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email" example:"alice@example.com"`
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

// ==================== AUTHENTICATION RESPONSE DTOs ====================

type RegisterResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}

type UserInfo struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}

type LoginResponse struct {
	User UserInfo `json:"user"`
}
