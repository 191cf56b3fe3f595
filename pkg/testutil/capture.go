// Package testutil provides shared test utilities for assert-outdated packages.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureStdout captures stdout during the execution of fn and returns the output as a string.
//
// The usage message and failure reports are printed straight to os.Stdout,
// so CLI tests need to swap the real file descriptor. The original stdout is
// restored after fn returns.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute while capturing stdout
//
// Returns:
//   - string: All content written to stdout during fn execution
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	stdout, _ := capture(t, fn)
	return stdout
}

// CaptureOutput captures both stdout and stderr during the execution of fn.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute while capturing both streams
//
// Returns:
//   - stdout: All content written to stdout during fn execution
//   - stderr: All content written to stderr during fn execution
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	return capture(t, fn)
}

// capture redirects os.Stdout and os.Stderr into pipes while fn runs.
//
// Both pipes are drained concurrently so a chatty fn cannot block on a full
// pipe buffer.
func capture(t *testing.T, fn func()) (string, string) {
	t.Helper()

	oldStdout, oldStderr := os.Stdout, os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating stdout pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating stderr pipe: %v", err)
	}

	outCh := drain(rOut)
	errCh := drain(rErr)

	os.Stdout, os.Stderr = wOut, wErr
	defer func() {
		os.Stdout, os.Stderr = oldStdout, oldStderr
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	return <-outCh, <-errCh
}

// drain copies r into a string delivered on the returned channel once r hits EOF.
func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		ch <- buf.String()
	}()
	return ch
}
