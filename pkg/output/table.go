package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/creatordash/pkg/utils"
)

// Alignment controls how values are padded within a column.
type Alignment int

const (
	// AlignLeft pads on the right; used for text columns.
	AlignLeft Alignment = iota
	// AlignRight pads on the left; used for numeric columns.
	AlignRight
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
//   - Align: Padding side for header and values
//   - hidden: Whether this column should be excluded from output
type Column struct {
	Header string
	Width  int
	Align  Alignment
	hidden bool
}

// Table provides a flexible table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
//
// Fields:
//   - columns: List of columns with their headers, widths, and visibility state
//   - separator: String used to separate columns in formatted output (default: "  ")
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter with a two-space separator.
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator sets a custom column separator and returns the table.
//
// Parameters:
//   - sep: The string to use between columns (e.g., " | " for pipe-separated output)
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn adds a left-aligned column and returns the table.
//
// The initial width is set to the display width of the header using
// Unicode-aware width calculation.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	return t.addColumn(header, AlignLeft)
}

// AddRightColumn adds a right-aligned column and returns the table.
func (t *Table) AddRightColumn(header string) *Table {
	return t.addColumn(header, AlignRight)
}

func (t *Table) addColumn(header string, align Alignment) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		Align:  align,
	})
	return t
}

// SetColumnVisible sets the visibility of a column by index and returns the table.
func (t *Table) SetColumnVisible(index int, visible bool) *Table {
	if index >= 0 && index < len(t.columns) {
		t.columns[index].hidden = !visible
	}
	return t
}

// UpdateWidths updates column widths based on a row of values and returns the table.
//
// Each column keeps the larger of its current width and the display width of
// the matching value, so all content fits.
//
// Parameters:
//   - values: Variable number of strings representing a data row
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			t.columns[i].Width = utils.Max(t.columns[i].Width, utils.DisplayWidth(val))
		}
	}
	return t
}

func (c Column) pad(val string) string {
	if c.Align == AlignRight {
		return utils.ToWidthRight(val, c.Width)
	}
	return utils.ToWidth(val, c.Width)
}

// HeaderRow returns the formatted header row string.
//
// Hidden columns are excluded from the output. Each header is padded to match
// its column's width and alignment.
func (t *Table) HeaderRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, col.pad(col.Header))
		}
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// SeparatorRow returns a separator row with dashes matching column widths.
func (t *Table) SeparatorRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, strings.Repeat("-", col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats a data row with proper padding for each column and returns the formatted string.
//
// Values are padded to match their respective column widths. Hidden columns are
// skipped, but their corresponding values should still be included in the input.
// Missing values (when fewer values than columns are provided) are treated as empty strings.
// Trailing padding is trimmed.
//
// Parameters:
//   - values: Variable number of strings representing the row data, one per column
//
// Returns:
//   - string: Formatted row with values separated by the separator
func (t *Table) FormatRow(values ...string) string {
	var parts []string
	for i, col := range t.columns {
		if !col.hidden {
			val := ""
			if i < len(values) {
				val = values[i]
			}
			parts = append(parts, col.pad(val))
		}
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// Fprint outputs the table header and separator to the given writer.
//
// Parameters:
//   - w: The writer to output to (e.g., os.Stdout, os.Stderr, or a buffer)
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}

// String returns a string representation of the table structure for debugging.
//
// The format is "Table{columns: [ID:2, FOLLOWERS:9 (right), GROUP:5 (hidden)]}".
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Table{columns: [")
	for i, col := range t.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s:%d", col.Header, col.Width))
		if col.Align == AlignRight {
			sb.WriteString(" (right)")
		}
		if col.hidden {
			sb.WriteString(" (hidden)")
		}
	}
	sb.WriteString("]}")
	return sb.String()
}
