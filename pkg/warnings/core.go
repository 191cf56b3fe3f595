// Package warnings carries non-fatal diagnostics, such as the package
// manager's own stderr output on a run that still produced a report.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes formatted warning messages to the configured warning writer.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, format, args...)
}

// CommandStderr forwards a command's stderr output as a warning.
//
// It performs the following operations:
//   - Ignores output that is empty after trimming
//   - Prints a "Warning: <command> reported:" header
//   - Prints every non-blank stderr line indented below it
//
// Parameters:
//   - command: The command that produced the output
//   - stderr: Raw standard error output
func CommandStderr(command, stderr string) {
	trimmed := strings.TrimSpace(stderr)
	if trimmed == "" {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Warning: %s reported:\n", command)
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimRight(line, "\r ")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", line)
	}
	Warnf("%s", b.String())
}

// WarningWriter returns the currently configured warning writer.
//
// Returns:
//   - io.Writer: The currently configured writer for warning messages
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
