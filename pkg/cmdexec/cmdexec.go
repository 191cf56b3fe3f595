// Package cmdexec runs the package manager's outdated command.
//
// The command runs through a non-login shell, so profile scripts never write
// to the captured standard output. Both output streams are captured. A non-zero exit status is not a failure on its own:
// npm exits 1 whenever it lists outdated dependencies, so a run counts as
// failed only when it also left standard output empty.
package cmdexec

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ajxudir/assert-outdated/pkg/errors"
	"github.com/ajxudir/assert-outdated/pkg/verbose"
	"github.com/ajxudir/assert-outdated/pkg/warnings"
)

// Result holds the captured output of a command.
//
// Fields:
//   - Stdout: Everything the command wrote to standard output
//   - Stderr: Everything the command wrote to standard error
//   - ExitCode: Process exit code (0 on success)
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunFunc is the function signature for command execution.
//
// Parameters:
//   - ctx: Context for cancellation; cancelling kills the command's process group
//   - command: Shell command line to execute
//
// Returns:
//   - Result: Captured output
//   - error: *errors.ExecError when the command failed without output
type RunFunc func(ctx context.Context, command string) (Result, error)

// Execute is the default command execution function.
//
// This variable holds the implementation used for command execution throughout
// the application. It can be replaced with a stub in tests.
var Execute RunFunc = Run

// waitDelay bounds how long Run waits for the output pipes to close after a
// cancelled command's process group was killed.
const waitDelay = 500 * time.Millisecond

// getShell returns the user's shell and args to run a command.
//
// This function checks the SHELL environment variable first (Unix systems),
// and falls back to platform-specific defaults if not set. The shell is never
// started as a login shell: a profile that prints a banner would corrupt the
// JSON report on stdout.
//
// Returns:
//   - shell: The path to the shell executable
//   - args: The shell arguments needed to execute a command string
func getShell() (shell string, args []string) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, []string{"-c"}
	}

	return getDefaultShell()
}

// Run executes command through the user's shell and captures its output.
//
// It performs the following operations:
//   - Step 1: Starts the command in its own process group; cancelling ctx kills the whole group
//   - Step 2: Waits for it and captures stdout and stderr
//   - Step 3: On a non-zero exit with output, forwards stderr as a warning and succeeds
//   - Step 4: On a failure without output, returns an ExecError
//
// Parameters:
//   - ctx: Context for cancellation
//   - command: Shell command line to execute
//
// Returns:
//   - Result: Captured output, also returned alongside an error for diagnostics
//   - error: *errors.ExecError if the command could not run or failed with empty stdout
func Run(ctx context.Context, command string) (Result, error) {
	if strings.TrimSpace(command) == "" {
		return Result{}, &errors.ExecError{ExitCode: -1, Err: fmt.Errorf("no command provided")}
	}

	workDir, _ := os.Getwd()
	verbose.CommandExec(command, workDir)

	shell, shellArgs := getShell()
	args := append(shellArgs, command)

	cmd := exec.CommandContext(ctx, shell, args...)
	setProcGroup(cmd)
	cmd.Cancel = func() error { return killProcGroup(cmd) }
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(runErr),
	}
	verbose.CommandResult(command, result.ExitCode, result.Stdout)

	if runErr == nil {
		return result, nil
	}

	if ctx.Err() != nil {
		return result, &errors.ExecError{Command: command, ExitCode: result.ExitCode, Err: ctx.Err()}
	}

	if result.Stdout != "" {
		warnings.CommandStderr(command, result.Stderr)
		return result, nil
	}

	return result, &errors.ExecError{
		Command:  command,
		ExitCode: result.ExitCode,
		Stderr:   strings.TrimSpace(result.Stderr),
		Err:      runErr,
	}
}

// exitCode extracts the process exit code from a Run error.
//
// Returns 0 for a nil error and -1 when the process never started or was
// killed by a signal.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
