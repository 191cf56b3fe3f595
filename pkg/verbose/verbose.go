// Package verbose provides opt-in debug logging for assert-outdated.
//
// Messages are written with a [DEBUG] prefix to stderr (or the writer set
// with SetWriter) and only when logging was enabled with --verbose.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ajxudir/assert-outdated/pkg/utils"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to true
//   - Releases the write lock
//
// Returns:
//   - None
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to false
//   - Releases the write lock
//
// Returns:
//   - None
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the enabled flag value
//   - Releases the read lock
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Updates the writer if the provided writer is not nil
//   - Releases the write lock
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
//
// Returns:
//   - None
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the writer value
//   - Releases the read lock
//
// Returns:
//   - io.Writer: The currently configured output writer
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// isEnabled returns whether verbose is enabled with proper locking for internal use.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the enabled flag value
//   - Releases the read lock
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func isEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Printf prints a formatted verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Printf(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - msg: The message string to print
//
// Returns:
//   - None
func Info(msg string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Infof(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// CommandExec logs command execution details if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the command being executed
//   - Prints the working directory where the command will run
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - cmd: The command string being executed
//   - workDir: The working directory path for command execution
//
// Returns:
//   - None
func CommandExec(cmd, workDir string) {
	if isEnabled() {
		w := getWriter()
		_, _ = fmt.Fprintf(w, "[DEBUG] Executing: %s\n", cmd)
		_, _ = fmt.Fprintf(w, "        Working dir: %s\n", workDir)
	}
}

// CommandResult logs command execution results if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the command status (succeeded or failed) with exit code
//   - Truncates long command strings to 60 display cells
//   - If output is provided, prints up to 5 lines with truncation
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - cmd: The command string that was executed
//   - exitCode: The exit code returned by the command (0 for success)
//   - output: The command output (stdout/stderr)
//
// Returns:
//   - None
func CommandResult(cmd string, exitCode int, output string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	if exitCode == 0 {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command succeeded: %s\n", utils.Truncate(cmd, 60))
	} else {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command failed (exit %d): %s\n", exitCode, utils.Truncate(cmd, 60))
	}
	if strings.TrimSpace(output) != "" {
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) > 5 {
			for _, line := range lines[:3] {
				_, _ = fmt.Fprintf(w, "        | %s\n", utils.Truncate(line, 100))
			}
			_, _ = fmt.Fprintf(w, "        | ... (%d more lines)\n", len(lines)-3)
		} else {
			for _, line := range lines {
				_, _ = fmt.Fprintf(w, "        | %s\n", utils.Truncate(line, 100))
			}
		}
	}
}

// PackageFiltered logs when a package is filtered out if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the package name and the reason it was filtered
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - name: The name of the package that was filtered
//   - reason: The reason why the package was filtered out
//
// Returns:
//   - None
func PackageFiltered(name, reason string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Package '%s' filtered: %s\n", name, reason)
	}
}
