package cmdexec

import "runtime"

// getDefaultShell returns the default shell for the system.
//
// This is the platform-specific fallback used when the SHELL environment
// variable is not set: "cmd /C" on Windows and "sh -c" everywhere else.
//
// Returns:
//   - shell: The path to the default shell executable
//   - args: The shell arguments needed to execute a command string
func getDefaultShell() (shell string, args []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}
	}
	return "sh", []string{"-c"}
}
