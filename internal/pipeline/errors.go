package pipeline

import "fmt"

// Error represents a failed assessment
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("assessment error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("assessment error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
