package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/assert-outdated/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show version, build date, and system information.`,
	Args:  cobra.NoArgs,
	Run:   runVersion,

	SilenceUsage: true,
}

// runVersion executes the version command to display build and version information.
//
// Outputs the build target platform, runtime platform (if different), Go version,
// build date, git commit hash, and semantic version.
func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	buildOS, buildArch := getBuildTarget()
	_, _ = fmt.Fprintf(out, "  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		_, _ = fmt.Fprintf(out, "  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	_, _ = fmt.Fprintf(out, "  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		_, _ = fmt.Fprintf(out, "  Date:    %s\n", BuildTime)
	}
	if GitCommit != "" {
		_, _ = fmt.Fprintf(out, "  Git:     %s\n", GitCommit)
	}

	version := Version
	if IsDevBuild() {
		version += " (development build)"
	}
	_, _ = fmt.Fprintf(out, "  Version: %s\n", version)
}

// GetVersion returns the current version string.
//
// Returns:
//   - string: Version string (e.g., "1.0.0", or "dev" for development builds)
func GetVersion() string {
	return Version
}

// IsDevBuild returns true if this is a development build (no release tag).
func IsDevBuild() bool {
	return Version == "dev"
}

// getBuildTarget returns the OS and architecture the binary was built for.
//
// Falls back to runtime values if build-time values weren't set (dev builds).
//
// Returns:
//   - string: Target operating system (e.g., "linux", "darwin", "windows")
//   - string: Target architecture (e.g., "amd64", "arm64")
func getBuildTarget() (string, string) {
	buildOS := BuildOS
	buildArch := BuildArch

	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}

	return buildOS, buildArch
}

// HasArchMismatch returns true if the binary was built for a different
// OS or architecture than what it's running on.
//
// Returns:
//   - bool: true if build target differs from runtime platform; false otherwise
func HasArchMismatch() bool {
	if BuildOS == "" && BuildArch == "" {
		return false
	}

	buildOS, buildArch := getBuildTarget()
	return buildOS != runtime.GOOS || buildArch != runtime.GOARCH
}

// GetArchMismatchWarning returns a warning message if there's an architecture
// mismatch, or an empty string if everything matches.
//
// Returns:
//   - string: Warning message if mismatch exists; empty string if platforms match
func GetArchMismatchWarning() string {
	if !HasArchMismatch() {
		return ""
	}

	buildOS, buildArch := getBuildTarget()
	return fmt.Sprintf("binary built for %s/%s but running on %s/%s; download the matching binary",
		buildOS, buildArch, runtime.GOOS, runtime.GOARCH)
}
