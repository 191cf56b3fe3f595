package cmdexec

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/ajxudir/assert-outdated/pkg/errors"
	"github.com/ajxudir/assert-outdated/pkg/warnings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipOnWindows skips tests that rely on a POSIX shell.
func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping Unix-specific test on Windows")
	}
}

// usePlainShell makes Run use the platform default "sh -c".
func usePlainShell(t *testing.T) {
	t.Helper()
	t.Setenv("SHELL", "")
}

// TestGetShell tests the behavior of getShell.
//
// It verifies:
//   - SHELL environment variable is used, without starting a login shell
//   - Falls back to sh when SHELL is not set
func TestGetShell(t *testing.T) {
	t.Run("uses SHELL env var when set", func(t *testing.T) {
		skipOnWindows(t)
		t.Setenv("SHELL", "/bin/bash")

		shell, args := getShell()
		assert.Equal(t, "/bin/bash", shell)
		assert.Equal(t, []string{"-c"}, args)
	})

	t.Run("falls back to sh when SHELL not set", func(t *testing.T) {
		skipOnWindows(t)
		originalShell, had := os.LookupEnv("SHELL")
		require.NoError(t, os.Unsetenv("SHELL"))
		t.Cleanup(func() {
			if had {
				_ = os.Setenv("SHELL", originalShell)
			}
		})

		shell, args := getShell()
		assert.Equal(t, "sh", shell)
		assert.Equal(t, []string{"-c"}, args)
	})
}

// TestRun tests the behavior of Run against real processes.
//
// It verifies:
//   - A successful command returns its output
//   - A failing command without output is an ExecError with the exit code
//   - A failing command with output succeeds (npm exits 1 when it lists dependencies)
//   - Stderr of a failing command is carried by the ExecError
func TestRun(t *testing.T) {
	skipOnWindows(t)
	usePlainShell(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		result, err := Run(ctx, "true")
		require.NoError(t, err)
		assert.Equal(t, 0, result.ExitCode)
		assert.Empty(t, result.Stdout)
	})

	t.Run("failing status code without output", func(t *testing.T) {
		_, err := Run(ctx, "false")
		require.Error(t, err)

		execErr, ok := errors.IsExecError(err)
		require.True(t, ok)
		assert.Equal(t, 1, execErr.ExitCode)
		assert.Equal(t, "false", execErr.Command)
	})

	t.Run("failing status code with output", func(t *testing.T) {
		var buf bytes.Buffer
		restore := warnings.SetWarningWriter(&buf)
		defer restore()

		result, err := Run(ctx, `printf '{"a":{}}'; echo 'npm WARN something' >&2; exit 1`)
		require.NoError(t, err)
		assert.Equal(t, `{"a":{}}`, result.Stdout)
		assert.Equal(t, 1, result.ExitCode)
		assert.Contains(t, buf.String(), "npm WARN something")
	})

	t.Run("stderr is carried on failure", func(t *testing.T) {
		_, err := Run(ctx, "echo 'npm: not found' >&2; exit 127")
		require.Error(t, err)

		execErr, ok := errors.IsExecError(err)
		require.True(t, ok)
		assert.Equal(t, 127, execErr.ExitCode)
		assert.Equal(t, "npm: not found", execErr.Stderr)
		assert.True(t, strings.HasSuffix(err.Error(), ": npm: not found"))
	})
}

// TestRunEmptyCommand tests that Run rejects an empty command without
// starting a process.
func TestRunEmptyCommand(t *testing.T) {
	_, err := Run(context.Background(), "   ")
	require.Error(t, err)

	execErr, ok := errors.IsExecError(err)
	require.True(t, ok)
	assert.Equal(t, -1, execErr.ExitCode)
	assert.Contains(t, err.Error(), "no command provided")
}

// TestRunCancelled tests that a cancelled context surfaces as an ExecError
// even when the command printed something first.
func TestRunCancelled(t *testing.T) {
	skipOnWindows(t)
	usePlainShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, "echo partial; sleep 5")
	require.Error(t, err)

	execErr, ok := errors.IsExecError(err)
	require.True(t, ok)
	assert.ErrorIs(t, execErr, context.Canceled)
}

// TestRunCancelledWhileRunning tests that cancelling a running command kills
// its whole process group instead of waiting for the children to finish.
//
// It verifies:
//   - Run returns shortly after the deadline, not when the pipeline ends
//   - The error is an ExecError wrapping context.DeadlineExceeded
func TestRunCancelledWhileRunning(t *testing.T) {
	skipOnWindows(t)
	usePlainShell(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Run(ctx, "sleep 3 | cat; echo done")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 2*time.Second)

	execErr, ok := errors.IsExecError(err)
	require.True(t, ok)
	assert.ErrorIs(t, execErr, context.DeadlineExceeded)
}

// TestRunIgnoresLoginProfile tests that a profile script printing a banner
// does not end up in the captured stdout.
func TestRunIgnoresLoginProfile(t *testing.T) {
	skipOnWindows(t)

	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".profile"), []byte("echo 'Welcome back'\n"), 0o644))
	t.Setenv("HOME", home)
	t.Setenv("SHELL", "/bin/sh")

	result, err := Run(context.Background(), "printf '{}'")
	require.NoError(t, err)
	assert.Equal(t, "{}", result.Stdout)
}

// TestExitCode tests the behavior of exitCode.
func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, -1, exitCode(assert.AnError))
}
