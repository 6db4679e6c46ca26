package flashcard

import (
	"errors"
	"fmt"
)

// Common error types for flashcard sessions
var (
	// ErrEmptyDeck indicates a session was requested for an empty item list.
	ErrEmptyDeck = errors.New("no vocabulary items to review")

	// ErrSessionCompleted indicates an answer was submitted after the last card.
	ErrSessionCompleted = errors.New("flashcard session completed")
)

// SessionError wraps errors from flashcard session operations with additional context.
// This allows consumers to differentiate between different types of session errors
// using errors.As instead of string matching.
type SessionError struct {
	// Operation is the operation that failed (e.g., "new_session", "answer")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for SessionError.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError returns a new SessionError for the new_session operation.
func NewSessionError(message string, err error) *SessionError {
	return &SessionError{
		Operation: "new_session",
		Message:   message,
		Err:       err,
	}
}

// NewAnswerError returns a new SessionError for the answer operation.
func NewAnswerError(message string, err error) *SessionError {
	return &SessionError{
		Operation: "answer",
		Message:   message,
		Err:       err,
	}
}
