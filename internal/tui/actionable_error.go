package tui

import "github.com/mrz1836/textsign/internal/errors"

// ActionableError wraps an error with an actionable suggestion.
//
// Example usage:
//
//	err := NewActionableError("key file is too short", "Run: textsign text generate")
//	output.Error(err)
//	// Outputs: ✗ key file is too short
//	//          ▸ Try: Run: textsign text generate
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion provides guidance for resolving the error.
	Suggestion string

	// Context provides optional additional information about the error.
	// When present, it is appended to the message in parentheses.
	Context string

	// Err is the underlying error, kept for errors.Is and the JSON details field.
	Err error
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// ActionableFromError builds an ActionableError from err using the
// user-facing message table. The original error text becomes the context
// when it adds detail beyond the message.
func ActionableFromError(err error) *ActionableError {
	if err == nil {
		return nil
	}
	msg, action := errors.Actionable(err)
	ae := &ActionableError{Message: msg, Suggestion: action, Err: err}
	if detail := err.Error(); detail != msg {
		ae.Context = detail
	}
	return ae
}

// Error implements the error interface.
// Returns the message with context if provided, e.g., "file not found (/path/to/file)".
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActionableError) Unwrap() error {
	return e.Err
}

// WithContext adds optional context to the error.
// Returns the same error for method chaining.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}
