package errors

import (
	"errors"
	"fmt"

	"github.com/ajxudir/assert-outdated/pkg/report"
)

// Exit codes for scripting integration.
// CI pipelines only need to distinguish "passed" from "failed".
const (
	// ExitSuccess indicates the check passed, or usage was printed.
	ExitSuccess = 0

	// ExitFailure indicates the check failed: the outdated command could not
	// run, its output was not JSON, or too many dependencies are outdated.
	ExitFailure = 1
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
type ExitError struct {
	// Code is the exit code for the command.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitFailure)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if exitErr, ok := IsExitError(err); ok {
		return exitErr.Code
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// ExecError indicates the outdated command could not be run or produced no
// usable output.
//
// A non-zero exit alone is not an ExecError: the package manager exits
// non-zero whenever it finds outdated dependencies. Only a failure that
// leaves standard output empty ends up here.
//
// Fields:
//   - Command: The command line that was executed
//   - ExitCode: Process exit code, or -1 if the process never started
//   - Stderr: Trimmed standard error output, may be empty
//   - Err: Underlying process error
type ExecError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

// Error implements the error interface.
//
// Format: "<command>: <process error>[: <stderr>]".
//
// Returns:
//   - string: Formatted error message
func (e *ExecError) Error() string {
	msg := e.Command
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns the underlying process error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// IsExecError checks if err is an ExecError and returns it.
func IsExecError(err error) (*ExecError, bool) {
	var ee *ExecError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// ParseError indicates the outdated command printed something that is not a
// valid outdated report.
//
// The message is the raw payload, verbatim, so whatever the package manager
// printed instead of JSON (a registry error page, a warning banner) is what
// the user sees.
//
// Fields:
//   - Raw: The text that failed to decode
//   - Err: The decoder error, available through Unwrap
type ParseError struct {
	Raw string
	Err error
}

// Error returns the raw text that failed to parse.
func (e *ParseError) Error() string {
	return e.Raw
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if err is a ParseError and returns it.
func IsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ThresholdError indicates more dependencies are outdated than allowed.
//
// This is the failure the tool exists to produce. It carries the full,
// ordered list of offending dependencies so the caller can print them.
//
// Fields:
//   - Count: Number of outdated dependencies after filtering
//   - MaxWarnings: The configured maximum
//   - Dependencies: The outdated dependencies, in report order
type ThresholdError struct {
	Count        int
	MaxWarnings  int
	Dependencies []report.Dependency
}

// Error implements the error interface.
//
// Format: "Too many outdated dependencies (<count> instead of <max>)."
//
// Returns:
//   - string: Formatted error message
func (e *ThresholdError) Error() string {
	return fmt.Sprintf("Too many outdated dependencies (%d instead of %d).", e.Count, e.MaxWarnings)
}

// NewThresholdError creates a ThresholdError for the given dependency list.
//
// Parameters:
//   - deps: The outdated dependencies that exceeded the threshold
//   - maxWarnings: The configured maximum
//
// Returns:
//   - *ThresholdError: New threshold error with Count set to len(deps)
func NewThresholdError(deps []report.Dependency, maxWarnings int) *ThresholdError {
	return &ThresholdError{
		Count:        len(deps),
		MaxWarnings:  maxWarnings,
		Dependencies: deps,
	}
}

// IsThresholdError checks if err is a ThresholdError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ThresholdError: The ThresholdError if err is one, nil otherwise
//   - bool: true if err is a ThresholdError
func IsThresholdError(err error) (*ThresholdError, bool) {
	var te *ThresholdError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
