package llm

import (
	"errors"
	"fmt"
)

var ErrEmptyResponse = errors.New("empty response")

// GenerationError is a backend fault: unreachable, rate limited, refused or
// empty.
type GenerationError struct {
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ValidationError means the backend answered with content that cannot be
// used: malformed JSON, schema mismatch, or a failed consistency check.
type ValidationError struct {
	Content string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid response: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Invalid wraps err as a ValidationError for content.
func Invalid(content string, err error) error {
	return &ValidationError{Content: content, Err: err}
}
