// Package errors defines exit-code conventions for the skillpack CLI.
//
// Commands return an *ExitError when they want a specific process exit
// status; main unwraps it with errors.As and exits accordingly.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Passthroughs to the underlying errors library so callers need a single
// errors import.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// Exit codes following the usual Unix conventions.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (bad input, invalid skill,
	// a batch with failures).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions).
	ExitSystem = 2
)

// ExitError wraps an error with an exit code and an optional suggestion.
type ExitError struct {
	// Err is the underlying error.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable hint printed to the user.
	Suggestion string
}

// NewUserError creates an ExitError with ExitUser code.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// Error returns the message of the underlying error.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error so errors.Is and errors.As work
// through the chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// CodeFor extracts the exit code from an error chain.
// A nil error is ExitSuccess; an error without an ExitError is ExitUser.
func CodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
