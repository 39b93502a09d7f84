// Package apperrors defines the request-scoped error taxonomy shared by the
// transaction and auth services. Provider rejections are deliberately not
// errors: they are normalized results, so a malformed or negative upstream
// response can never crash the boundary layer.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrGatewayUnreachable indicates a transport-level failure talking to the
// upstream provider: timeout, connection error, or a non-2xx status with an
// unusable body. The caller decides whether to reconcile; dispatch is never
// retried automatically.
var ErrGatewayUnreachable = errors.New("gateway unreachable")

// ValidationError reports invalid input rejected before any network call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GatewayUnreachable wraps a transport error with the sentinel so callers
// can classify it with errors.Is
func GatewayUnreachable(err error) error {
	return fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
}
