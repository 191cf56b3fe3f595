package errors

import (
	"fmt"
	"io"

	"github.com/ajxudir/assert-outdated/pkg/output"
)

// PrintError prints a failed check to the writer.
//
// This is the single implementation for failure display. It performs the
// following operations:
//   - Step 1: Prints "Error: <message>", with a hint line when one is known
//   - Step 2: For threshold failures, prints the offending dependencies as a table
//
// Threshold messages never get a hint: the dependency list is the hint.
//
// Parameters:
//   - w: Writer to output to (the CLI passes stdout)
//   - err: The error to print; nil prints nothing
//
// Output format:
//
//	Error: <error message>
//	  💡 <hint if available>
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	if te, ok := IsThresholdError(err); ok {
		printThresholdError(w, te)
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
}

// printThresholdError prints the threshold message followed by the table of
// outdated dependencies in report order.
//
// Parameters:
//   - w: Writer to output to
//   - err: The threshold error to print
func printThresholdError(w io.Writer, err *ThresholdError) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", err.Error())
	if len(err.Dependencies) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w)
	output.WriteDependencyTable(w, err.Dependencies)
}
