// Package utils holds terminal text helpers shared by table and dashboard rendering.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the display width of a string, accounting for unicode characters.
//
// Wide characters (e.g., CJK characters, emojis) occupy two cells.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string on the right to a specific display width.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width (must be > 0 to have effect)
//
// Returns:
//   - string: The padded string, or original if already wide enough or width <= 0
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// ToWidthRight pads a string on the left so it ends at the column edge.
// Used for numeric columns.
func ToWidthRight(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return strings.Repeat(" ", width-current) + val
}

// Truncate shortens val to at most width cells, ending with "…" when cut.
func Truncate(val string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(val, width, "…")
}

// Max returns the maximum value from a list of integers, or 0 for none.
func Max(values ...int) int {
	m := 0
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
