package requests

// SubmitResponse is one answered question inside a form submission. The
// request body for POST /response is an array of these.
type SubmitResponse struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options"`
}
