package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrTooLarge is returned when a transcript exceeds the configured size bound.
	ErrTooLarge = errors.New("transcript exceeds size limit")
	// ErrUnsupportedFormat is returned for file extensions without a reader.
	ErrUnsupportedFormat = errors.New("unsupported transcript format")
)

// Error represents a transcript that could not be ingested
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
