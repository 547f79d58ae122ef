package output

import "errors"

// Exit codes:
// 0 = Success, nothing to report
// 1 = Issues found (failed checks, invalid input, critical updates)
// 2 = System error (unreadable file, I/O failure)
const (
	ExitSuccess     = 0
	ExitIssues      = 1
	ExitSystemError = 2
)

// ExitError is an error that carries an exit code for the CLI.
//
// A silent ExitError has already been rendered by the command that returned
// it; the top-level error handler only uses its code.
type ExitError struct {
	Code    int
	Message string
	Cause   error
	Silent  bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for invalid input (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitIssues,
		Message: message,
	}
}

// NewIssuesError creates a silent error signalling that a command rendered
// one or more findings (exit code 1).
func NewIssuesError(message string) *ExitError {
	return &ExitError{
		Code:    ExitIssues,
		Message: message,
		Silent:  true,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
// The cause is appended to the message so the diagnostic names the failing path.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitIssues for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitIssues
}

// IsSilent reports whether err was already rendered by its command.
func IsSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Silent
}
