package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommandResolutionHints maps command names to installation instructions.
// Used when the shell reports that the outdated command does not exist.
var CommandResolutionHints = map[string]string{
	"npm":  "Install Node.js: https://nodejs.org/",
	"node": "Install Node.js: https://nodejs.org/",
	"npx":  "Install Node.js: https://nodejs.org/",
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
// The first matching pattern wins.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "EJSONPARSE",
		Hint:       "package.json is not valid JSON",
		Resolution: "Fix the syntax of package.json in the working directory",
	},
	{
		Pattern:    "ENOTFOUND",
		Hint:       "DNS resolution failed",
		Resolution: "Check network connectivity and DNS configuration",
	},
	{
		Pattern:    "ECONNREFUSED",
		Hint:       "Connection refused by server",
		Resolution: "Check if the registry is accessible and not blocked",
	},
	{
		Pattern:    "ETIMEDOUT",
		Hint:       "Registry request timed out",
		Resolution: "Check internet connection and proxy settings",
	},
	{
		Pattern:    "E401",
		Hint:       "Authentication required",
		Resolution: "Configure authentication for the package registry (npm login or .npmrc)",
	},
	{
		Pattern:    "E403",
		Hint:       "Access forbidden",
		Resolution: "Check permissions and authentication credentials for the registry",
	},
	{
		Pattern:    "E404",
		Hint:       "Package or version not found",
		Resolution: "Verify the dependency names in package.json exist in the registry",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions or run with appropriate privileges",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// GetHintForCommand returns the installation hint for a command.
//
// Parameters:
//   - cmd: The command name (e.g., "npm")
//
// Returns:
//   - string: Installation hint, or empty string if unknown command
func GetHintForCommand(cmd string) string {
	return CommandResolutionHints[cmd]
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stdout, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	if hint := hintFor(err); hint != "" {
		return errStr + "\n  \U0001F4A1 " + hint
	}
	return errStr
}

// parseErrorHint is shown for output that is not an outdated report and
// matches no known npm error code.
const parseErrorHint = "Output is not a JSON outdated report: Run the command in the project directory and check what it prints"

// hintFor picks the hint for err: missing commands first, then message
// patterns, then the generic hint for unparseable output.
func hintFor(err error) string {
	if ee, ok := IsExecError(err); ok && ee.ExitCode == exitCommandNotFound {
		fields := strings.Fields(ee.Command)
		if len(fields) > 0 {
			if install := GetHintForCommand(fields[0]); install != "" {
				return "Command not found: " + install
			}
		}
	}
	if hint := GetHint(err); hint != "" {
		return hint
	}
	if _, ok := IsParseError(err); ok {
		return parseErrorHint
	}
	return ""
}

// exitCommandNotFound is the status POSIX shells exit with when the command
// does not exist.
const exitCommandNotFound = 127
