// Package apperrors defines the error taxonomy every service returns:
// validation failures map to 400, missing records to 404, and anything
// else to 500 at the handler boundary.
package apperrors

import "errors"

// ValidationError marks caller input that can never succeed as given
// (missing fields, malformed JSON sub-documents, index bounds, bad price).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError with a caller-facing message.
func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// NotFoundError marks a lookup for a record that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound builds a NotFoundError with a caller-facing message.
func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
