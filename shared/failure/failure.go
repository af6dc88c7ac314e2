package failure

import (
	"errors"
)

// Code classifies a Failure so callers can pick a message without string matching.
type Code int

const (
	CodeInternal Code = iota
	CodeValidation
	CodeNotFound
	CodeInvalidState
	CodeConflict
)

func (c Code) String() string {
	switch c {
	case CodeValidation:
		return "validation"
	case CodeNotFound:
		return "not found"
	case CodeInvalidState:
		return "invalid state"
	case CodeConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Failure is a wrapper for error messages and codes of the hotel error taxonomy.
type Failure struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

var EmptyInput = &Failure{Code: CodeValidation, Message: "input cannot be empty"}
var AttemptsExhausted = &Failure{Code: CodeValidation, Message: "too many invalid attempts"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a new Failure with code for malformed input.
func Validation(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// ValidationFromString returns a new Failure with code for malformed input with message set from string.
func ValidationFromString(msg string) error {
	return &Failure{
		Code:    CodeValidation,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    CodeNotFound,
		Message: msg,
	}
}

// InvalidState returns a new Failure for a transition the current state does not allow.
func InvalidState(msg string) error {
	return &Failure{
		Code:    CodeInvalidState,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(msg string) error {
	return &Failure{
		Code:    CodeConflict,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the failure code of an error interface.
func GetCode(err error) Code {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeInternal
}

// Is reports whether err carries the given failure code.
func Is(err error, code Code) bool {
	if err == nil {
		return false
	}

	return GetCode(err) == code
}
