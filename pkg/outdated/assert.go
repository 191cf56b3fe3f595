package outdated

import (
	"github.com/ajxudir/assert-outdated/pkg/errors"
	"github.com/ajxudir/assert-outdated/pkg/report"
	"github.com/ajxudir/assert-outdated/pkg/verbose"
)

// Assert checks the number of outdated dependencies against the maximum.
//
// The comparison is inclusive: exactly maxWarnings dependencies still pass.
//
// Parameters:
//   - deps: Outdated dependencies after filtering
//   - maxWarnings: Largest count that passes; expected to be >= 0
//
// Returns:
//   - error: *errors.ThresholdError carrying deps when len(deps) > maxWarnings; nil otherwise
func Assert(deps []report.Dependency, maxWarnings int) error {
	verbose.Printf("Outdated dependencies: %d (max %d)", len(deps), maxWarnings)
	if len(deps) > maxWarnings {
		return errors.NewThresholdError(deps, maxWarnings)
	}
	return nil
}
