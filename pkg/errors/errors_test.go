package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetExitCode tests exit code extraction.
//
// It verifies that:
//   - nil maps to ExitSuccess
//   - ExitError codes survive wrapping
//   - Validation errors map to ExitConfigError
//   - Anything else maps to ExitFailure
func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitConfigError, GetExitCode(NewExitError(ExitConfigError, errors.New("bad"))))
	assert.Equal(t, ExitConfigError, GetExitCode(fmt.Errorf("wrapped: %w", NewExitErrorf(ExitConfigError, "bad %s", "flag"))))
	assert.Equal(t, ExitConfigError, GetExitCode(NewConfigValidationError("locale", "bad tag")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
}

// TestExitError tests ExitError message fallbacks and unwrapping.
func TestExitError(t *testing.T) {
	inner := errors.New("inner")

	assert.Equal(t, "inner", NewExitError(ExitFailure, inner).Error())
	assert.Equal(t, "exit code 2", (&ExitError{Code: ExitFailure}).Error())
	assert.Equal(t, "custom 7", NewExitErrorf(ExitFailure, "custom %d", 7).Error())
	assert.ErrorIs(t, NewExitError(ExitFailure, inner), inner)

	exitErr, ok := IsExitError(fmt.Errorf("ctx: %w", NewExitError(ExitConfigError, inner)))
	require.True(t, ok)
	assert.Equal(t, ExitConfigError, exitErr.Code)

	_, ok = IsExitError(inner)
	assert.False(t, ok)
}

// TestValidationError tests message formatting for validation errors.
func TestValidationError(t *testing.T) {
	sentinel := errors.New("invalid sort key")

	t.Run("field and message", func(t *testing.T) {
		err := NewDatasetValidationError("creators[1].name", "must not be empty")
		assert.Equal(t, "creators[1].name: must not be empty", err.Error())
		assert.Equal(t, ValidationCategoryDataset, err.Category)
	})

	t.Run("falls back to wrapped error", func(t *testing.T) {
		err := NewViewValidationError("--sort", sentinel, []string{"none", "name"})
		assert.Equal(t, "--sort: invalid sort key", err.Error())
		assert.ErrorIs(t, err, sentinel)

		verbose := err.VerboseError()
		assert.Contains(t, verbose, "Valid keys: none, name")
		assert.Contains(t, verbose, "Hint:")
	})

	t.Run("expected", func(t *testing.T) {
		err := &ValidationError{Message: "bad", Expected: "asc or desc"}
		assert.Equal(t, "bad\n    Expected: asc or desc", err.VerboseError())
	})
}

// TestValidationResult tests collecting and joining validation errors.
func TestValidationResult(t *testing.T) {
	result := NewValidationResult()
	assert.False(t, result.HasErrors())
	assert.NoError(t, result.Err())
	assert.Empty(t, result.ErrorMessage())

	result.AddWarning("unknown field \"email\"")
	result.AddError(NewDatasetValidationError("creators[0].id", "duplicate id 1"))
	result.AddError(NewDatasetValidationError("creators[1].revenue", "must not be negative"))

	assert.True(t, result.HasErrors())
	assert.True(t, result.HasWarnings())

	err := result.Err()
	require.Error(t, err)
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "creators[0].id", ve.Field)
	assert.Equal(t, ExitConfigError, GetExitCode(err))

	var buf bytes.Buffer
	result.PrintTo(&buf, false)
	assert.Equal(t, "Warning: unknown field \"email\"\n"+
		"Validation failed:\n"+
		"  - creators[0].id: duplicate id 1\n"+
		"  - creators[1].revenue: must not be negative\n", buf.String())
}

// TestPrintErrorWithHints tests error display.
//
// It verifies that:
//   - Plain errors get matching hints
//   - Joined errors print one line each
//   - Exit errors without a message print their wrapped errors
//   - View validation errors always list valid keys
func TestPrintErrorWithHints(t *testing.T) {
	t.Run("hint", func(t *testing.T) {
		var buf bytes.Buffer
		PrintErrorWithHints(&buf, []error{errors.New("open data.json: no such file or directory")}, false)
		assert.Contains(t, buf.String(), "Error: open data.json: no such file or directory")
		assert.Contains(t, buf.String(), "File or directory not found")
	})

	t.Run("no hint", func(t *testing.T) {
		var buf bytes.Buffer
		PrintErrorWithHints(&buf, []error{errors.New("boom"), nil}, false)
		assert.Equal(t, "Error: boom\n", buf.String())
	})

	t.Run("joined", func(t *testing.T) {
		var buf bytes.Buffer
		joined := errors.Join(
			NewDatasetValidationError("a", "one"),
			NewDatasetValidationError("b", "two"),
		)
		PrintErrorWithHints(&buf, []error{joined}, false)
		assert.Equal(t, "Validation Error: a: one\nValidation Error: b: two\n", buf.String())
	})

	t.Run("exit error around joined", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewExitError(ExitConfigError, errors.Join(
			NewConfigValidationError("view.sort.key", "bad"),
			NewConfigValidationError("locale", "bad"),
		))
		PrintErrorWithHints(&buf, []error{err}, false)
		assert.Equal(t, "Validation Error: view.sort.key: bad\nValidation Error: locale: bad\n", buf.String())
	})

	t.Run("view error lists keys", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewViewValidationError("--sort", errors.New("invalid sort key: \"x\""), []string{"none", "id"})
		PrintErrorWithHints(&buf, []error{err}, false)
		assert.Contains(t, buf.String(), "Valid keys: none, id")
	})
}

// TestGetHint tests hint lookup.
func TestGetHint(t *testing.T) {
	assert.Empty(t, GetHint(nil))
	assert.Empty(t, EnhanceErrorWithHint(nil))
	assert.Contains(t, GetHint(errors.New("invalid sort direction: \"up\"")), "asc or desc")
	assert.Contains(t, EnhanceErrorWithHint(errors.New("invalid YAML: line 3")), "Check file syntax")
}
