// Package warnings routes non-fatal warnings (unknown dataset fields, skipped
// config keys) to a redirectable writer so commands can collect and print them
// after their main output.
package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning to the configured writer.
//
// A trailing newline is added when format does not end with one, so each call
// produces exactly one line for display.WarningCollector.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	_, _ = io.WriteString(w, msg)
}

// WarningWriter returns the currently configured writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter replaces the warning writer and returns a restore function.
//
// Parameters:
//   - w: New writer; nil resets to os.Stderr
//
// Returns:
//   - func(): Restores the previous writer
//
// Example:
//
//	collector := &display.WarningCollector{}
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
