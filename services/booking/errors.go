package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking business-rule failures.
const (
	CodeAuthentication = "authenticationError"
	CodeAuthorization  = "authorizationError"
	CodeNotFound       = "notFoundError"
	CodeValidation     = "validationError"
	CodeConflict       = "conflictError"
	CodeInvalidState   = "invalidStateError"
)

// Error is a business-rule failure. These are returned as structured
// failure responses, not treated as infrastructure faults.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAuthenticationError(msg string) error {
	return &Error{Code: CodeAuthentication, Message: msg}
}

func NewAuthorizationError(msg string) error {
	return &Error{Code: CodeAuthorization, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewInvalidStateError(msg string) error {
	return &Error{Code: CodeInvalidState, Message: msg}
}

// AsBusinessError unwraps err into a booking *Error, or nil if err is an
// infrastructure fault.
func AsBusinessError(err error) *Error {
	var be *Error
	if errors.As(err, &be) {
		return be
	}
	return nil
}

// HasCode reports whether err is a business error with the given code.
func HasCode(err error, code string) bool {
	be := AsBusinessError(err)
	return be != nil && be.Code == code
}
