// Package errors provides unified error types and display for creatordash.
//
// The package holds:
//   - ExitError: Command exit with a specific exit code
//   - ValidationError: Configuration, dataset or view-state validation failures
//   - ValidationResult: A collection of validation errors and warnings
//
// Error Display:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Exit Codes:
//   - ExitSuccess (0): Command completed
//   - ExitFailure (2): Runtime failure (unreadable dataset, write error)
//   - ExitConfigError (3): Invalid configuration, dataset or flags
package errors
