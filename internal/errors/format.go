package errors

import (
	"fmt"
	"strings"
)

// FormatError renders a CLIError with a type prefix and any help text.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	switch err.Type {
	case ErrorTypeValidation:
		sb.WriteString("✗ Validation Error: ")
	case ErrorTypeAuth:
		sb.WriteString("✗ Authentication Error: ")
	case ErrorTypeAPI:
		sb.WriteString("✗ API Error: ")
	case ErrorTypeNetwork:
		sb.WriteString("✗ Network Error: ")
	case ErrorTypeConfig:
		sb.WriteString("✗ Configuration Error: ")
	default:
		sb.WriteString("✗ Error: ")
	}

	sb.WriteString(err.Err.Error())

	if err.Context != "" {
		sb.WriteString("\n\n")
		sb.WriteString(err.Context)
	}

	return sb.String()
}

// FormatSimple renders any error, using FormatError when possible.
func FormatSimple(err error) string {
	if err == nil {
		return ""
	}
	if cliErr, ok := err.(*CLIError); ok {
		return FormatError(cliErr)
	}
	return fmt.Sprintf("✗ Error: %v", err)
}
