package formats

import (
	"encoding/json"
	"strings"

	"github.com/ajxudir/assert-outdated/pkg/errors"
	"github.com/ajxudir/assert-outdated/pkg/report"
	"github.com/ajxudir/assert-outdated/pkg/verbose"
)

// emptyReport is what an empty command output stands for: npm prints nothing
// at all when no dependency is outdated.
const emptyReport = "{}"

// jsonUnmarshalFunc is a variable that holds the json.Unmarshal function.
// This allows for dependency injection during testing.
var jsonUnmarshalFunc = json.Unmarshal

// Parse turns the outdated command's standard output into an ordered list of
// dependencies.
//
// It performs the following operations:
//   - Step 1: Treats empty (or whitespace-only) output as the empty report "{}"
//   - Step 2: Decodes and validates the report with ParseJSON
//   - Step 3: Reshapes it into a dependency list with Normalize
//
// Parameters:
//   - stdout: Captured standard output of the outdated command
//
// Returns:
//   - []report.Dependency: Dependencies in report order; empty (not nil) for an empty report
//   - error: *errors.ParseError if the output is not a valid report; nil on success
func Parse(stdout string) ([]report.Dependency, error) {
	text := stdout
	if strings.TrimSpace(text) == "" {
		verbose.Info("Outdated command printed nothing, treating it as an empty report")
		text = emptyReport
	}

	r, err := ParseJSON(text)
	if err != nil {
		return nil, err
	}

	deps := Normalize(r)
	verbose.Printf("Parsed %d outdated dependencies", len(deps))
	return deps, nil
}

// ParseJSON decodes text into a typed outdated report.
//
// On failure the returned error's message is text itself, not the decoder
// message, so whatever the package manager printed instead of a report is
// shown as-is. The decoder error stays reachable through errors.Unwrap.
//
// Parameters:
//   - text: Raw JSON text
//
// Returns:
//   - report.Report: The decoded report with keys in document order
//   - error: *errors.ParseError carrying text verbatim; nil on success
func ParseJSON(text string) (report.Report, error) {
	var r report.Report
	if err := jsonUnmarshalFunc([]byte(text), &r); err != nil {
		verbose.Printf("Outdated report is not valid JSON: %v", err)
		return report.Report{}, &errors.ParseError{Raw: text, Err: err}
	}
	return r, nil
}

// Normalize reshapes a report into a dependency list.
//
// One Dependency is produced per key, in key order, with Name set to the key
// and the remaining fields copied from the entry. Nothing is filtered here.
//
// Parameters:
//   - r: The decoded report
//
// Returns:
//   - []report.Dependency: len(r.Keys) dependencies in the same order
func Normalize(r report.Report) []report.Dependency {
	deps := make([]report.Dependency, 0, len(r.Keys))
	for _, name := range r.Keys {
		deps = append(deps, report.Dependency{
			Name:  name,
			Entry: r.Entries[name],
		})
	}
	return deps
}
