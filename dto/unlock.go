package dto

// UpdateUnlockRequest uses pointers for partial-update semantics: only the
// supplied fields are written.
type UpdateUnlockRequest struct {
	Messages      *bool `json:"messages,omitempty"`
	Gallery       *bool `json:"gallery,omitempty"`
	MessagePreset *int  `json:"message_preset,omitempty" validate:"omitempty,gte=0"`
	MessageDone   *bool `json:"message_done,omitempty"`
}

func (r UpdateUnlockRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UnlockResponse struct {
	Username      string `json:"username"`
	Messages      bool   `json:"messages"`
	Gallery       bool   `json:"gallery"`
	MessagePreset int    `json:"message_preset"`
	MessageDone   bool   `json:"message_done"`
}
