package dto

type CreateColorRequest struct {
	Eng string `json:"eng" validate:"required,max=50" example:"Red"`
	Sp  string `json:"sp" validate:"required,max=50" example:"Rojo"`
}

func (r CreateColorRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateColorRequest struct {
	Eng string `json:"eng" validate:"required,max=50"`
	Sp  string `json:"sp" validate:"required,max=50"`
}

func (r UpdateColorRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ColorResponse struct {
	ID        uint   `json:"id"`
	Eng       string `json:"eng"`
	Sp        string `json:"sp"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
