//go:build unix

package cmdexec

import (
	"os/exec"
	"syscall"
)

// setProcGroup starts the command in a new process group, so npm and any
// node processes it spawns can be signalled together.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcGroup sends SIGKILL to the command's whole process group (negative
// PID). It is installed as the command's Cancel hook: the default hook only
// kills the shell, which would leave npm running and holding the output pipes.
//
// Returns:
//   - error: Error if the kill fails, nil if successful or the process never started
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
