package errors

import (
	"fmt"
	"io"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// This is the single implementation for error display across all commands.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, includes expected values and valid keys for validation errors
//
// Output format:
//
//	Error: <error message>
//	  💡 <actionable hint if available>
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if exitErr, ok := err.(*ExitError); ok && exitErr.Message == "" && exitErr.Err != nil {
		printSingleError(w, exitErr.Err, verbose)
		return
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			printSingleError(w, e, verbose)
		}
		return
	}

	if ve, ok := IsValidationError(err); ok {
		printValidationError(w, ve, verbose)
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
}

// printValidationError prints the standard message, or VerboseError in verbose
// mode. Valid keys are always shown for view errors since they name flag values.
func printValidationError(w io.Writer, err *ValidationError, verbose bool) {
	if verbose || err.Category == ValidationCategoryView {
		_, _ = fmt.Fprintf(w, "Validation Error: %s\n", err.VerboseError())
		return
	}
	_, _ = fmt.Fprintf(w, "Validation Error: %s\n", err.Error())
}
