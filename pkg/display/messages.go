package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/creatordash/pkg/constants"
	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/output"
)

// PrintWarnings prints warning messages to the writer.
//
// Formats each warning on its own line with a warning icon prefix.
// Does nothing if warnings slice is empty.
// Prints a blank line before the warnings for separation.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - warnings: Slice of warning messages
//
// Example output:
//
//	<blank line>
//	⚠️ creators.json: record 2: unknown field "email" ignored
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// PrintCaption prints the record count line shown under the table.
//
// Example output:
//
//	Showing 2 of 4 total records
func PrintCaption(w io.Writer, visible, total int) {
	_, _ = fmt.Fprintf(w, "Showing %d of %d total records\n", visible, total)
}

// PrintNoCreatorsMessage prints the empty-state message for a view that
// matched nothing.
func PrintNoCreatorsMessage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "No creators found")
	_, _ = fmt.Fprintln(w, "Try adjusting your filters.")
}

// PrintSummary prints the four dashboard metrics as label/value lines.
//
// Parameters:
//   - w: Writer to output to
//   - m: Metrics of the visible records
//   - opts: Value rendering options
//
// Example output:
//
//	Total Creators        4
//	Active Creators       3
//	Total Revenue         $18,500.00
//	Avg Revenue / Active  $6,166.67
func PrintSummary(w io.Writer, m creators.Metrics, opts Options) {
	table := output.NewTable().AddColumn("").AddColumn("")
	rows := [][]string{
		{"Total Creators", FormatFollowers(m.TotalCreators)},
		{"Active Creators", FormatFollowers(m.ActiveCreators)},
		{"Total Revenue", FormatRevenue(m.TotalRevenue, opts.symbol())},
		{"Avg Revenue / Active", FormatRevenue(m.AvgRevenuePerActive, opts.symbol())},
	}
	for _, row := range rows {
		table.UpdateWidths(row...)
	}
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, table.FormatRow(row...))
	}
}

// PrintViewHeader prints the active filters and sort above a table.
//
// Example output:
//
//	Search: "am" | Active only | Sort: followers desc
func PrintViewHeader(w io.Writer, state creators.ViewState) {
	parts := []string{}
	if state.Search != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", state.Search))
	}
	if state.ActiveOnly {
		parts = append(parts, "Active only")
	}
	if !state.Sort.IsNone() {
		parts = append(parts, "Sort: "+state.Sort.String())
	}
	if len(parts) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, strings.Join(parts, " | "))
	_, _ = fmt.Fprintln(w)
}

// WarningCollector captures warnings for deferred output.
//
// Implements io.Writer so it can be used as a warning sink.
// Warnings are collected and can be printed later using Messages().
//
// Example:
//
//	collector := &WarningCollector{}
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
//	// ... load dataset ...
//	display.PrintWarnings(os.Stderr, collector.Messages())
type WarningCollector struct {
	messages []string
}

// Write implements io.Writer for capturing warning messages.
//
// Splits input on newlines and stores non-empty trimmed lines.
func (c *WarningCollector) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns a copy of all collected warning messages.
func (c *WarningCollector) Messages() []string {
	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Reset clears all collected messages.
func (c *WarningCollector) Reset() {
	c.messages = nil
}

// NewWarningCollector creates a new WarningCollector.
func NewWarningCollector() *WarningCollector {
	return &WarningCollector{}
}
