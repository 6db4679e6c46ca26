package quiz

import (
	"errors"
	"fmt"
)

// Common errors returned by quiz sessions
var (
	// ErrNoQuestions indicates a session was started without any questions.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrSessionActive indicates Start was called on a session that is already running or finished.
	ErrSessionActive = errors.New("quiz session already started")

	// ErrNotAwaitingAnswer indicates an answer was submitted while no question is counting down.
	ErrNotAwaitingAnswer = errors.New("no question is awaiting an answer")

	// ErrSessionCompleted indicates an answer was submitted after the last question.
	ErrSessionCompleted = errors.New("quiz session completed")

	// ErrEmptyAnswer indicates a submission without a selected option or typed answer.
	ErrEmptyAnswer = errors.New("answer cannot be empty")
)

// SessionError wraps errors from quiz session operations with additional context.
// This allows consumers to differentiate between failures using errors.As
// instead of string matching.
type SessionError struct {
	// Operation is the operation that failed (e.g., "start", "submit")
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

// NewStartError returns a new SessionError for the start operation.
func NewStartError(message string, err error) *SessionError {
	return &SessionError{Operation: "start", Message: message, Err: err}
}

// NewSubmitError returns a new SessionError for the submit operation.
func NewSubmitError(message string, err error) *SessionError {
	return &SessionError{Operation: "submit", Message: message, Err: err}
}
