package dto

type CreatePhotoActionRequest struct {
	Action int   `json:"action" validate:"gte=0" example:"1"`
	Done   *bool `json:"done,omitempty"`
}

func (r CreatePhotoActionRequest) Validate() error {
	return GetValidator().Struct(r)
}

type PhotoActionResponse struct {
	ActionID uint `json:"action_id"`
	UserID   uint `json:"user_id"`
	Action   int  `json:"action"`
	Done     bool `json:"done"`
}

// Created / Updated / Exists mirror the three upsert outcomes the client
// distinguishes between.
type PhotoActionMutationResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ActionID uint   `json:"action_id,omitempty"`
	Created  bool   `json:"created,omitempty"`
	Updated  bool   `json:"updated,omitempty"`
	Exists   bool   `json:"exists,omitempty"`
}

type PhotoActionListResponse struct {
	Success bool                  `json:"success"`
	Actions []PhotoActionResponse `json:"actions"`
}
