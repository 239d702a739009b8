package books

import "errors"

var (
	ErrDuplicate = errors.New("book already exists")
	ErrConflict  = errors.New("id already exists")
	ErrNotFound  = errors.New("book not found")
)

// ValidationError reports malformed, missing or wrongly typed input.
// Message is safe to show to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
