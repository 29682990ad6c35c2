// Package verbose provides debug logging enabled by the --verbose flag.
//
// Messages go through a zap logger with a console encoder that prints
// "[DEBUG] message" followed by any structured fields.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
	logger            = newLogger(os.Stderr)
)

// newLogger builds a debug-level console logger writing to w.
func newLogger(w io.Writer) *zap.Logger {
	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "msg",
		LevelKey:   "level",
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]")
		},
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// Enable turns on verbose logging.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
		logger = newLogger(w)
	}
}

// Writer returns the current output writer.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// current returns the logger if verbose is enabled, nil otherwise.
func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return nil
	}
	return logger
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if l := current(); l != nil {
		l.Debug(fmt.Sprintf(format, args...))
	}
}

// Info prints a verbose message if enabled.
func Info(msg string) {
	if l := current(); l != nil {
		l.Debug(msg)
	}
}

// Infof prints a formatted verbose message if enabled.
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// Debugw prints a message with structured fields if enabled.
//
// Parameters:
//   - msg: Message text
//   - fields: zap fields appended after the message
//
// Example:
//
//	verbose.Debugw("Dataset loaded", zap.String("source", path), zap.Int("records", n))
func Debugw(msg string, fields ...zap.Field) {
	if l := current(); l != nil {
		l.Debug(msg, fields...)
	}
}

// ConfigLoaded logs which configuration file was used.
//
// Parameters:
//   - path: Config file path, or empty for the built-in defaults
func ConfigLoaded(path string) {
	if path == "" {
		Info("Using built-in default configuration")
		return
	}
	Debugw("Config loaded", zap.String("path", path))
}

// DatasetLoaded logs the record source and count.
func DatasetLoaded(source string, records int) {
	Debugw("Dataset loaded", zap.String("source", source), zap.Int("records", records))
}

// ViewApplied logs one pipeline run.
//
// Parameters:
//   - search: Name query
//   - activeOnly: Whether the active-only constraint was set
//   - sort: Sort description (e.g., "followers desc")
//   - visible: Number of records after filtering
//   - total: Number of records before filtering
func ViewApplied(search string, activeOnly bool, sort string, visible, total int) {
	Debugw("View applied",
		zap.String("search", search),
		zap.Bool("activeOnly", activeOnly),
		zap.String("sort", sort),
		zap.Int("visible", visible),
		zap.Int("total", total))
}
