package constvars

// Headers carrying the routing context for form operations. The form a
// question or response belongs to and the submitting user are identified
// by headers, not by path or query parameters.
const (
	HeaderFormName = "form-name"
	HeaderUserID   = "user-id"
)
