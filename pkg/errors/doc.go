// Package errors provides the error types and failure display of
// assert-outdated.
//
// Every way the check can fail has a type:
//   - ExecError: The outdated command could not run or printed nothing
//   - ParseError: The command printed something that is not a report
//   - ThresholdError: More dependencies are outdated than allowed
//   - ExitError: Command exit with a specific exit code
//
// Error Display:
//
// PrintError formats a failure with an actionable hint when one is known:
//
//	errors.PrintError(os.Stdout, err)
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if te, ok := errors.IsThresholdError(err); ok {
//	    fmt.Println(te.Count)
//	}
//
// Exit Codes:
//
// CI pipelines only look at the exit status:
//   - ExitSuccess (0): The check passed, or usage was printed
//   - ExitFailure (1): Any failure
package errors
