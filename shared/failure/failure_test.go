package failure_test

import (
	"errors"
	"fmt"
	"hotel/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    failure.CodeNotFound,
		Message: "room 101 not found",
	}

	if f.Error() != "room 101 not found" {
		t.Errorf("expected error message to be 'room 101 not found', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    failure.Code
		message string
	}{
		{
			name:    "EmptyInput",
			failure: failure.EmptyInput,
			code:    failure.CodeValidation,
			message: "input cannot be empty",
		},
		{
			name:    "AttemptsExhausted",
			failure: failure.AttemptsExhausted,
			code:    failure.CodeValidation,
			message: "too many invalid attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %s, got %s", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("national id must be 11 digits"),
			expected: &failure.Failure{Code: failure.CodeValidation, Message: "national id must be 11 digits"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.Validation(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		code    failure.Code
		message string
	}{
		{
			name:    "validation from string",
			result:  failure.ValidationFromString("end date before start date"),
			code:    failure.CodeValidation,
			message: "end date before start date",
		},
		{
			name:    "not found",
			result:  failure.NotFound("room 7 not found"),
			code:    failure.CodeNotFound,
			message: "room 7 not found",
		},
		{
			name:    "invalid state",
			result:  failure.InvalidState("room 7 is not available"),
			code:    failure.CodeInvalidState,
			message: "room 7 is not available",
		},
		{
			name:    "conflict",
			result:  failure.Conflict("room 7 already registered"),
			code:    failure.CodeConflict,
			message: "room 7 already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %s, got %s", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestInternalError(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil error")
	}

	result := failure.InternalError(errors.New("tracer shutdown failed"))
	if failure.GetCode(result) != failure.CodeInternal {
		t.Errorf("expected internal code, got %s", failure.GetCode(result))
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected failure.Code
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: failure.CodeNotFound, Message: "test"},
			expected: failure.CodeNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("reserve: %w", failure.InvalidState("test")),
			expected: failure.CodeInvalidState,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: failure.CodeInternal,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: failure.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestIs(t *testing.T) {
	if failure.Is(nil, failure.CodeInternal) {
		t.Error("nil error must not match any code")
	}

	if !failure.Is(failure.Conflict("dup"), failure.CodeConflict) {
		t.Error("expected conflict failure to match CodeConflict")
	}

	if failure.Is(failure.Conflict("dup"), failure.CodeNotFound) {
		t.Error("conflict failure must not match CodeNotFound")
	}
}
