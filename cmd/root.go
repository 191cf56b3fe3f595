// Package cmd implements the command-line interface for assert-outdated.
// The root command runs the outdated check and fails the build when too many
// dependencies are outdated.
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajxudir/assert-outdated/pkg/config"
	"github.com/ajxudir/assert-outdated/pkg/errors"
	"github.com/ajxudir/assert-outdated/pkg/outdated"
	"github.com/ajxudir/assert-outdated/pkg/verbose"
	"github.com/ajxudir/assert-outdated/pkg/warnings"
)

var exitFunc = os.Exit
var checkFunc = outdated.Check
var osArgs = func() []string { return os.Args[1:] }

var verboseFlag bool
var maxWarningsFlag maxWarningsValue
var ignorePreReleasesFlag preReleaseValue

var rootCmd = &cobra.Command{
	Use:   "assert-outdated --max-warnings <Number> [--ignore-pre-releases]",
	Short: "Fail when a project has too many outdated npm dependencies",
	Long: `Runs "npm outdated" in the current directory and exits non-zero when more
dependencies are outdated than --max-warnings allows.

Run "assert-outdated version" for build information.`,
	Args:               cobra.ArbitraryArgs,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		prepareRun()
	},
	RunE: runCheck,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Check passed or usage printed
//   - 1: Check failed
//
// An interrupt or SIGTERM cancels the running outdated command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, osArgs()); err != nil {
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function parses args instead of os.Args and resets
// all flag state first, so it can be called repeatedly in one process.
//
// Parameters:
//   - args: Command-line arguments without the program name
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest(args ...string) error {
	resetFlags()
	return execute(context.Background(), args)
}

// commandFor picks the command that handles args.
//
// Only the first argument can select the version command. Anywhere else
// "version" is an ordinary positional argument, and positional arguments
// are ignored by the check.
//
// Returns:
//   - *cobra.Command: versionCmd or rootCmd
//   - []string: The arguments left for that command
func commandFor(args []string) (*cobra.Command, []string) {
	if len(args) > 0 && args[0] == versionCmd.Name() {
		return versionCmd, args[1:]
	}
	return rootCmd, args
}

// execute runs the command selected by args.
func execute(ctx context.Context, args []string) error {
	cmd, cmdArgs := commandFor(args)
	cmd.SetArgs(append([]string{}, cmdArgs...))
	defer cmd.SetArgs(nil)
	return cmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")

	rootCmd.Flags().Var(&maxWarningsFlag, maxWarningsFlagName, "Maximum number of outdated dependencies that still passes")
	ignoreFlag := rootCmd.Flags().VarPF(&ignorePreReleasesFlag, ignorePreReleasesFlagName, "", "Do not count upgrades from a stable version to a pre-release")
	ignoreFlag.NoOptDefVal = "true"

	rootCmd.SetFlagErrorFunc(handleFlagError)
}

// prepareRun applies the ambient flags before any command runs.
func prepareRun() {
	if verboseFlag {
		verbose.Enable()
	}
	if w := GetArchMismatchWarning(); w != "" {
		warnings.Warnf("Warning: %s\n", w)
	}
}

// resetFlags restores every flag of both commands to its default.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		if f.Name != maxWarningsFlagName && f.Name != ignorePreReleasesFlagName {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	versionCmd.Flags().VisitAll(reset)
	maxWarningsFlag.reset()
	ignorePreReleasesFlag.reset()
	verbose.Disable()
}

// buildConfig turns the parsed flags into a run configuration.
//
// Returns:
//   - config.Config: The configuration
//   - bool: false if no usable --max-warnings value was given
func buildConfig() (config.Config, bool) {
	for _, raw := range maxWarningsFlag.ignored {
		verbose.Printf("Ignoring --%s value %q: not a non-negative whole number", maxWarningsFlagName, raw)
	}
	for _, raw := range ignorePreReleasesFlag.ignored {
		verbose.Printf("Ignoring --%s value %q: not a boolean", ignorePreReleasesFlagName, raw)
	}
	if !maxWarningsFlag.set {
		return config.Config{}, false
	}
	return config.Config{
		MaxWarnings:       maxWarningsFlag.value,
		IgnorePreReleases: ignorePreReleasesFlag.enabled,
	}, true
}

// runCheck executes the root command.
//
// It performs the following operations:
//   - Step 1: Builds the configuration, printing usage and passing when --max-warnings is unusable
//   - Step 2: Runs the outdated check
//   - Step 3: Prints the failure to stdout and returns an exit error
//
// Parameters:
//   - cmd: The cobra command being executed
//   - args: Positional arguments, ignored
//
// Returns:
//   - error: *errors.ExitError with ExitFailure if the check failed; nil otherwise
func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, ok := buildConfig()
	if !ok {
		_, _ = fmt.Fprintln(out, config.UsageMessage)
		return nil
	}
	verbose.Printf("Checking outdated dependencies (max %d, ignore pre-releases: %t)", cfg.MaxWarnings, cfg.IgnorePreReleases)

	deps, err := checkFunc(cmd.Context(), cfg)
	if err != nil {
		errors.PrintError(out, err)
		return errors.NewExitError(errors.ExitFailure, err)
	}

	verbose.Printf("Check passed: %d outdated dependencies (max %d)", len(deps), cfg.MaxWarnings)
	return nil
}

// handleFlagError decides what happens when flag parsing fails.
//
// A trailing --max-warnings without a value is treated as if it were not
// there: parsing stopped at the last argument, so every earlier flag has
// already been applied and the check runs (or prints usage) with those.
// Any other parse error is printed with the usage line and fails the run.
//
// Parameters:
//   - cmd: The command whose flags failed to parse
//   - err: The parse error
//
// Returns:
//   - error: Result of runCheck for a missing --max-warnings value; an exit error otherwise
func handleFlagError(cmd *cobra.Command, err error) error {
	var missing *pflag.ValueRequiredError
	if stderrors.As(err, &missing) && missing.GetFlag() != nil && missing.GetFlag().Name == maxWarningsFlagName {
		prepareRun()
		return runCheck(cmd, cmd.Flags().Args())
	}

	out := cmd.OutOrStdout()
	errors.PrintError(out, err)
	_, _ = fmt.Fprintln(out, config.UsageMessage)
	return errors.NewExitError(errors.ExitFailure, err)
}
