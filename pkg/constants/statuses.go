// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// Status labels shown for the active flag.
const (
	// StatusActive labels a creator whose active flag is set.
	StatusActive = "Active"

	// StatusInactive labels a creator whose active flag is clear.
	StatusInactive = "Inactive"
)

// Default file names and view values.
const (
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = ".creatordash.yml"

	// DatasetSample selects the built-in sample dataset.
	DatasetSample = "sample"

	// DefaultCurrencySymbol prefixes revenue values.
	DefaultCurrencySymbol = "$"

	// DefaultLocale is the collation locale for name tie-breaks.
	DefaultLocale = "en"
)

// Icon constants for CLI output.
const (
	// IconActive marks active creators (green circle).
	IconActive = "🟢"

	// IconInactive marks inactive creators (white circle).
	IconInactive = "⚪"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"

	// IconSortAsc marks the header of an ascending sort column.
	IconSortAsc = "▲"

	// IconSortDesc marks the header of a descending sort column.
	IconSortDesc = "▼"
)
