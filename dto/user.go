package dto

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=30"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

func (r CreateUserRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UserResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"created_at"`
}
