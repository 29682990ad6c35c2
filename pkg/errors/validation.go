package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ValidationCategory identifies the source of a validation error.
type ValidationCategory string

const (
	// ValidationCategoryConfig indicates a configuration file validation error.
	ValidationCategoryConfig ValidationCategory = "config"

	// ValidationCategoryDataset indicates an invalid creator record.
	ValidationCategoryDataset ValidationCategory = "dataset"

	// ValidationCategoryView indicates invalid view state such as an unknown sort key.
	ValidationCategoryView ValidationCategory = "view"
)

// ValidationError represents a configuration, dataset or view-state failure.
//
// Fields:
//   - Category: Source of validation ("config", "dataset", "view")
//   - Field: Name of the invalid field or setting
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - ValidKeys: List of valid options (for enum-like fields)
//   - Hint: Actionable hint for fixing the error
//   - Err: Underlying error, may be nil
//
// Example:
//
//	return &ValidationError{
//	    Category:  ValidationCategoryView,
//	    Field:     "sort.key",
//	    Message:   `unknown sort key "email"`,
//	    ValidKeys: creators.SortKeyNames(),
//	}
type ValidationError struct {
	// Category identifies the validation source.
	Category ValidationCategory

	// Field is the name of the field that failed validation.
	Field string

	// Message describes what is wrong with the field.
	Message string

	// Expected describes what a valid value should look like.
	Expected string

	// ValidKeys lists valid options for enum-like fields.
	ValidKeys []string

	// Hint provides an actionable suggestion for fixing the error.
	Hint string

	// Err is the underlying error, kept for errors.Is checks.
	Err error
}

// Error implements the error interface.
//
// Formats as "field: message" when Field is set, otherwise the message alone.
func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, msg)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// VerboseError returns a detailed error message with expected values and hints.
//
// Returns:
//   - string: Detailed error with expected values, valid keys and hint
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder

	sb.WriteString(e.Error())

	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}

	if len(e.ValidKeys) > 0 {
		sb.WriteString(fmt.Sprintf("\n    Valid keys: %s", strings.Join(e.ValidKeys, ", ")))
	}

	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n    Hint: %s", e.Hint))
	}

	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewConfigValidationError creates a ValidationError for configuration issues.
//
// Parameters:
//   - field: The field name that failed validation
//   - message: Description of the error
//
// Returns:
//   - *ValidationError: New validation error with config category
//
// Example:
//
//	err := errors.NewConfigValidationError("view.sort.direction", "must be asc or desc")
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryConfig,
		Field:    field,
		Message:  message,
	}
}

// NewDatasetValidationError creates a ValidationError for an invalid record.
//
// Parameters:
//   - field: Record locator and field (e.g., "creators[2].revenue")
//   - message: Description of the error
//
// Returns:
//   - *ValidationError: New validation error with dataset category
func NewDatasetValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryDataset,
		Field:    field,
		Message:  message,
	}
}

// NewViewValidationError wraps a view-state error such as an unknown sort key.
//
// Parameters:
//   - field: Flag or setting that carried the value (e.g., "--sort")
//   - err: The parse error
//   - validKeys: Accepted values
//
// Returns:
//   - *ValidationError: New validation error with view category
func NewViewValidationError(field string, err error, validKeys []string) *ValidationError {
	return &ValidationError{
		Category:  ValidationCategoryView,
		Field:     field,
		Err:       err,
		ValidKeys: validKeys,
		Hint:      "Run 'creatordash list --help' for accepted values",
	}
}

// ValidationResult holds the results of validation operations.
//
// Fields:
//   - Errors: Slice of validation errors
//   - Warnings: Slice of warning messages
type ValidationResult struct {
	// Errors contains all validation errors encountered.
	Errors []*ValidationError

	// Warnings contains non-fatal warning messages.
	Warnings []string
}

// NewValidationResult creates a new empty ValidationResult.
//
// Example:
//
//	result := errors.NewValidationResult()
//	result.AddError(validationErr)
//	if result.HasErrors() {
//	    return result.Err()
//	}
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   make([]*ValidationError, 0),
		Warnings: make([]string, 0),
	}
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AddError adds a validation error to the result.
func (r *ValidationResult) AddError(err *ValidationError) {
	r.Errors = append(r.Errors, err)
}

// AddWarning adds a warning message to the result.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Err joins all validation errors into one error, or returns nil.
//
// The joined error still matches *ValidationError via errors.As.
func (r *ValidationResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// ErrorMessage returns a formatted error message for all validation errors.
//
// Returns:
//   - string: Formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// VerboseErrorMessage returns detailed error messages with hints.
func (r *ValidationResult) VerboseErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.VerboseError()))
	}
	return sb.String()
}

// PrintTo writes validation results to the given writer.
//
// Parameters:
//   - w: Writer to output to
//   - verbose: If true, includes detailed error information
func (r *ValidationResult) PrintTo(w io.Writer, verbose bool) {
	for _, warning := range r.Warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}

	if len(r.Errors) > 0 {
		if verbose {
			_, _ = fmt.Fprint(w, r.VerboseErrorMessage())
		} else {
			_, _ = fmt.Fprint(w, r.ErrorMessage())
		}
	}
}
