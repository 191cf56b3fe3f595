//go:build windows

package cmdexec

import (
	"os/exec"
)

// setProcGroup is a no-op on Windows.
func setProcGroup(cmd *exec.Cmd) {}

// killProcGroup kills the command's process. It is the command's Cancel hook.
//
// Returns:
//   - error: Error if the kill fails, nil if successful or the process never started
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
