package outdated

import (
	"context"

	"github.com/ajxudir/assert-outdated/pkg/cmdexec"
	"github.com/ajxudir/assert-outdated/pkg/config"
	"github.com/ajxudir/assert-outdated/pkg/filtering"
	"github.com/ajxudir/assert-outdated/pkg/formats"
	"github.com/ajxudir/assert-outdated/pkg/report"
	"github.com/ajxudir/assert-outdated/pkg/verbose"
)

// Command is the outdated command that is run in the working directory.
//
// --save false keeps npm from touching package.json or the lock file.
const Command = "npm outdated --json --save false"

// Check runs the outdated check end to end.
//
// It performs the following operations:
//   - Step 1: Validates cfg
//   - Step 2: Runs Command through cmdexec.Execute
//   - Step 3: Parses standard output into dependencies (empty output is an empty report)
//   - Step 4: Applies the dependency filters built from cfg
//   - Step 5: Asserts the remaining count is at most cfg.MaxWarnings
//
// The first failing step ends the check.
//
// Parameters:
//   - ctx: Context for cancelling the outdated command
//   - cfg: Run configuration
//
// Returns:
//   - []report.Dependency: The filtered dependencies, also on threshold failure
//   - error: Validation error, *errors.ExecError, *errors.ParseError or
//     *errors.ThresholdError; nil when the check passes
func Check(ctx context.Context, cfg config.Config) ([]report.Dependency, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result, err := cmdexec.Execute(ctx, Command)
	if err != nil {
		return nil, err
	}

	deps, err := formats.Parse(result.Stdout)
	if err != nil {
		return nil, err
	}
	logNonRegistry(deps)

	deps = filtering.FilterDependencies(deps, filtering.FromConfig(cfg))

	return deps, Assert(deps, cfg.MaxWarnings)
}

// logNonRegistry notes dependencies whose versions are npm placeholders
// (git, linked, remote). They are counted like any other dependency.
func logNonRegistry(deps []report.Dependency) {
	if !verbose.IsEnabled() {
		return
	}
	for _, dep := range deps {
		if dep.IsNonRegistry() {
			verbose.Printf("%s is not installed from the registry (current %q, latest %q)",
				dep.Name, dep.Current, dep.Latest)
		}
	}
}
