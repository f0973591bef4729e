package responses

type FormResponse struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}
