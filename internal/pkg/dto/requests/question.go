package requests

type CreateQuestion struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options"`
}
