package domain

import "fmt"

// APIError is the problem-details style error body returned by all
// handlers.
type APIError struct {
	Type     string       `json:"type,omitempty"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return e.Title
}

// NewAPIError creates an APIError with the given status, title and detail.
func NewAPIError(status int, title, detail string) *APIError {
	return &APIError{
		Title:  title,
		Status: status,
		Detail: detail,
	}
}
