package cmd

import (
	"bytes"
	"context"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/assert-outdated/pkg/config"
	"github.com/ajxudir/assert-outdated/pkg/errors"
	"github.com/ajxudir/assert-outdated/pkg/report"
	"github.com/ajxudir/assert-outdated/pkg/testutil"
	"github.com/ajxudir/assert-outdated/pkg/verbose"
)

// stubCheck replaces the outdated check and records the configurations it receives.
func stubCheck(t *testing.T, deps []report.Dependency, err error) *[]config.Config {
	t.Helper()
	var calls []config.Config
	original := checkFunc
	checkFunc = func(_ context.Context, cfg config.Config) ([]report.Dependency, error) {
		calls = append(calls, cfg)
		return deps, err
	}
	t.Cleanup(func() { checkFunc = original })
	return &calls
}

// TestParseMaxWarnings tests the behavior of parseMaxWarnings.
func TestParseMaxWarnings(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
		ok       bool
	}{
		{"0", 0, true},
		{"3", 3, true},
		{" 7 ", 7, true},
		{"+2", 2, true},
		{"2.0", 2, true},
		{"1e2", 100, true},
		{"-0", 0, true},
		{"1e20", math.MaxInt32, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-1", 0, false},
		{"1.5", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1e400", 0, false},
		{"3 apples", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, ok := parseMaxWarnings(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}

// TestMaxWarningsValue tests the lenient flag value.
//
// It verifies:
//   - Set never fails
//   - Invalid values keep the previous state and are remembered
//   - Valid values override earlier ones
func TestMaxWarningsValue(t *testing.T) {
	var v maxWarningsValue
	assert.Equal(t, "", v.String())
	assert.Equal(t, "number", v.Type())

	require.NoError(t, v.Set("abc"))
	assert.False(t, v.set)

	require.NoError(t, v.Set("4"))
	require.NoError(t, v.Set("-2"))
	assert.True(t, v.set)
	assert.Equal(t, 4, v.value)
	assert.Equal(t, "4", v.String())
	assert.Equal(t, []string{"abc", "-2"}, v.ignored)

	require.NoError(t, v.Set("1"))
	assert.Equal(t, 1, v.value)

	v.reset()
	assert.False(t, v.set)
	assert.Empty(t, v.ignored)
}

// TestPreReleaseValue tests the lenient --ignore-pre-releases value.
//
// It verifies:
//   - Set never fails
//   - Unreadable values leave the filter off and are remembered
//   - Boolean spellings are accepted
func TestPreReleaseValue(t *testing.T) {
	var v preReleaseValue
	assert.Equal(t, "false", v.String())
	assert.Equal(t, "bool", v.Type())

	require.NoError(t, v.Set("maybe"))
	assert.False(t, v.enabled)
	assert.Equal(t, []string{"maybe"}, v.ignored)

	require.NoError(t, v.Set("true"))
	assert.True(t, v.enabled)
	assert.Equal(t, "true", v.String())

	require.NoError(t, v.Set("0"))
	assert.False(t, v.enabled)

	v.reset()
	assert.False(t, v.enabled)
	assert.Empty(t, v.ignored)
}

// TestCommandFor tests that only the first argument selects the version command.
func TestCommandFor(t *testing.T) {
	cmd, args := commandFor([]string{"version"})
	assert.Same(t, versionCmd, cmd)
	assert.Empty(t, args)

	cmd, args = commandFor([]string{"--max-warnings", "0", "version"})
	assert.Same(t, rootCmd, cmd)
	assert.Equal(t, []string{"--max-warnings", "0", "version"}, args)

	cmd, args = commandFor(nil)
	assert.Same(t, rootCmd, cmd)
	assert.Empty(t, args)
}

// TestRunCheckConfig tests that flags reach the check as configuration.
func TestRunCheckConfig(t *testing.T) {
	t.Run("both flags", func(t *testing.T) {
		calls := stubCheck(t, nil, nil)

		err := ExecuteTest("--max-warnings", "2", "--ignore-pre-releases")
		require.NoError(t, err)
		require.Len(t, *calls, 1)
		assert.Equal(t, config.Config{MaxWarnings: 2, IgnorePreReleases: true}, (*calls)[0])
	})

	t.Run("flags do not leak between runs", func(t *testing.T) {
		calls := stubCheck(t, nil, nil)

		require.NoError(t, ExecuteTest("--max-warnings", "2", "--ignore-pre-releases"))
		require.NoError(t, ExecuteTest("--max-warnings", "5"))
		require.Len(t, *calls, 2)
		assert.Equal(t, config.Config{MaxWarnings: 5}, (*calls)[1])

		output := testutil.CaptureStdout(t, func() {
			require.NoError(t, ExecuteTest())
		})
		assert.Contains(t, output, config.UsageMessage)
		assert.Len(t, *calls, 2)
	})

	t.Run("usage is printed once to stdout", func(t *testing.T) {
		stubCheck(t, nil, nil)

		stdout, stderr := testutil.CaptureOutput(t, func() {
			require.NoError(t, ExecuteTest("--ignore-pre-releases"))
		})
		assert.Equal(t, config.UsageMessage+"\n", stdout)
		assert.Empty(t, stderr)
	})
}

// TestRunCheckFailure tests failure output and the returned exit error.
func TestRunCheckFailure(t *testing.T) {
	deps := []report.Dependency{
		testutil.NewDependency("module").WithVersions("1.0.0", "2.0.0", "2.0.0").Build(),
	}
	stubCheck(t, deps, errors.NewThresholdError(deps, 0))

	var err error
	output := testutil.CaptureStdout(t, func() {
		err = ExecuteTest("--max-warnings", "0")
	})

	require.Error(t, err)
	exitErr, ok := errors.IsExitError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ExitFailure, exitErr.Code)
	assert.Equal(t, "Too many outdated dependencies (1 instead of 0).", err.Error())
	assert.Contains(t, output, "Error: Too many outdated dependencies (1 instead of 0).\n")
	assert.Contains(t, output, "node_modules/module")
}

// TestHandleFlagError tests flag parse failures other than a missing threshold value.
func TestHandleFlagError(t *testing.T) {
	calls := stubCheck(t, nil, nil)

	var err error
	output := testutil.CaptureStdout(t, func() {
		err = ExecuteTest("--max-warnings", "0", "--verbose=maybe")
	})

	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
	assert.Empty(t, *calls)
	assert.Contains(t, output, "Error: ")
	assert.Contains(t, output, config.UsageMessage)
}

// TestVerboseFlag tests the behavior of the --verbose flag.
//
// It verifies:
//   - Verbose mode is enabled for the run
//   - Ignored --max-warnings values are logged
func TestVerboseFlag(t *testing.T) {
	stubCheck(t, nil, nil)

	var buf bytes.Buffer
	verbose.SetWriter(&buf)
	defer verbose.SetWriter(os.Stderr)
	defer verbose.Disable()

	err := ExecuteTest("--verbose", "--max-warnings", "lots", "--max-warnings", "1")
	require.NoError(t, err)
	assert.True(t, verbose.IsEnabled())
	assert.Contains(t, buf.String(), `Ignoring --max-warnings value "lots"`)
	assert.Contains(t, buf.String(), "Check passed: 0 outdated dependencies (max 1)")
}

// TestPersistentPreRunVerbose tests the behavior of PersistentPreRun with verbose flag.
func TestPersistentPreRunVerbose(t *testing.T) {
	oldVerbose := verboseFlag
	defer func() {
		verboseFlag = oldVerbose
		verbose.Disable()
	}()

	verboseFlag = false
	rootCmd.PersistentPreRun(rootCmd, []string{})
	assert.False(t, verbose.IsEnabled())

	verboseFlag = true
	rootCmd.PersistentPreRun(rootCmd, []string{})
	assert.True(t, verbose.IsEnabled())
}

// TestExecuteWithExitCodes tests the behavior of Execute with different outcomes.
//
// It verifies:
//   - Passing and usage runs do not call exitFunc
//   - Failures call exitFunc with ExitFailure
func TestExecuteWithExitCodes(t *testing.T) {
	oldExit := exitFunc
	oldArgs := osArgs
	defer func() {
		exitFunc = oldExit
		osArgs = oldArgs
	}()

	run := func(args ...string) int {
		exitCode := -1
		exitFunc = func(code int) { exitCode = code }
		resetFlags()
		osArgs = func() []string { return args }
		testutil.CaptureStdout(t, Execute)
		return exitCode
	}

	t.Run("usage does not exit", func(t *testing.T) {
		stubCheck(t, nil, nil)
		assert.Equal(t, -1, run())
	})

	t.Run("pass does not exit", func(t *testing.T) {
		stubCheck(t, nil, nil)
		assert.Equal(t, -1, run("--max-warnings", "0"))
	})

	t.Run("failure exits with ExitFailure", func(t *testing.T) {
		stubCheck(t, nil, &errors.ParseError{Raw: "not json"})
		assert.Equal(t, errors.ExitFailure, run("--max-warnings", "0"))
	})
}
