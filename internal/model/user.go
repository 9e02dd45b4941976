package model

type User struct {
	Base
	Name      string  `json:"name" db:"name"`
	SessionID *string `json:"session_id" db:"session_id"`
}

type CreateUserPayload struct {
	Name string `json:"name" validate:"required,max=120"`
}

func (p *CreateUserPayload) Validate() error {
	return validate.Struct(p)
}
