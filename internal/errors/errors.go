package errors

import (
	"fmt"
)

// ErrorType classifies a CLI failure for exit-code and display purposes.
type ErrorType int

const (
	// ErrorTypeUnknown is an unclassified failure.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeValidation covers argument and flag misuse.
	ErrorTypeValidation
	// ErrorTypeAuth covers rejected or missing provider credentials.
	ErrorTypeAuth
	// ErrorTypeAPI covers provider responses other than auth failures.
	ErrorTypeAPI
	// ErrorTypeNetwork covers transport failures before a response arrived.
	ErrorTypeNetwork
	// ErrorTypeRuntime covers everything else at runtime.
	ErrorTypeRuntime
	// ErrorTypeConfig covers configuration file problems.
	ErrorTypeConfig
)

// CLIError carries a failure type plus optional help text for the user.
type CLIError struct {
	Type    ErrorType
	Err     error
	Context string
}

func (e *CLIError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%v\n%s", e.Err, e.Context)
	}
	return e.Err.Error()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ValidationError creates a validation error with usage hints.
func ValidationError(err error, context string) *CLIError {
	return &CLIError{Type: ErrorTypeValidation, Err: err, Context: context}
}

// AuthErrorWithContext creates a credential error with help text.
func AuthErrorWithContext(err error, context string) *CLIError {
	return &CLIError{Type: ErrorTypeAuth, Err: err, Context: context}
}

// APIError creates a provider API error.
func APIError(err error) *CLIError {
	return &CLIError{Type: ErrorTypeAPI, Err: err}
}

// NetworkError creates a transport error.
func NetworkError(err error) *CLIError {
	return &CLIError{Type: ErrorTypeNetwork, Err: err}
}

// RuntimeError creates a general runtime error.
func RuntimeError(err error) *CLIError {
	return &CLIError{Type: ErrorTypeRuntime, Err: err}
}

// ConfigError creates a configuration error.
func ConfigError(err error) *CLIError {
	return &CLIError{Type: ErrorTypeConfig, Err: err}
}

// ConfigErrorWithContext creates a configuration error with help text.
func ConfigErrorWithContext(err error, context string) *CLIError {
	return &CLIError{Type: ErrorTypeConfig, Err: err, Context: context}
}
