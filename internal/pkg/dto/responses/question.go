package responses

// Question is the public projection of a stored question. Store-internal
// identifiers never leave the repository layer.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}
