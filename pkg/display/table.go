package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ajxudir/creatordash/pkg/constants"
	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/output"
	"github.com/ajxudir/creatordash/pkg/utils"
	"github.com/ajxudir/creatordash/pkg/verbose"
)

// creatorColumn describes one column of the creator table.
type creatorColumn struct {
	header string
	key    creators.SortKey
	right  bool
	value  func(c creators.Creator, opts Options) string
}

// Column indexes into creatorColumns.
const (
	columnID = iota
	columnName
	columnFollowers
	columnRevenue
	columnStatus
	columnCreatedAt
)

// creatorColumns is the table layout in display order. The ID column is only
// shown while the view is sorted by id.
var creatorColumns = []creatorColumn{
	columnID:        {header: "ID", key: creators.SortKeyID, value: func(c creators.Creator, _ Options) string { return strconv.Itoa(c.ID) }},
	columnName:      {header: "NAME", key: creators.SortKeyName, value: func(c creators.Creator, o Options) string { return o.name(c.Name) }},
	columnFollowers: {header: "FOLLOWERS", key: creators.SortKeyFollowers, right: true, value: func(c creators.Creator, _ Options) string { return FormatFollowers(c.Followers) }},
	columnRevenue:   {header: "REVENUE", key: creators.SortKeyRevenue, right: true, value: func(c creators.Creator, o Options) string { return FormatRevenue(c.Revenue, o.symbol()) }},
	columnStatus:    {header: "STATUS", key: creators.SortKeyActive, value: func(c creators.Creator, _ Options) string { return FormatStatus(c.Active) }},
	columnCreatedAt: {header: "CREATED AT", key: creators.SortKeyCreatedAt, value: func(c creators.Creator, o Options) string { return FormatDate(c.CreatedAt, o.DateLayout) }},
}

// compactSeparator replaces the default column gap when a table is fitted to
// a narrow width.
const compactSeparator = " "

// SortIndicator returns the header marker for key under sort, or "" when the
// view is not sorted by key.
func SortIndicator(key creators.SortKey, sort creators.SortConfig) string {
	if sort.IsNone() || sort.Key != key {
		return ""
	}
	if sort.Direction == creators.Desc {
		return constants.IconSortDesc
	}
	return constants.IconSortAsc
}

// HeaderLabel returns header with the sort indicator appended when active.
func HeaderLabel(header string, key creators.SortKey, sort creators.SortConfig) string {
	if ind := SortIndicator(key, sort); ind != "" {
		return header + " " + ind
	}
	return header
}

// CreatorTable is the creator table laid out for one view. The list command
// and the dashboard both render through it so their columns and cells agree.
type CreatorTable struct {
	table *output.Table
	rows  [][]string
}

// NewCreatorTable lays out records under sort.
//
// Column widths cover every header and cell. The ID column is hidden unless
// the view is sorted by id.
func NewCreatorTable(records []creators.Creator, sort creators.SortConfig, opts Options) *CreatorTable {
	table := output.NewTable()
	for _, col := range creatorColumns {
		label := HeaderLabel(col.header, col.key, sort)
		if col.right {
			table.AddRightColumn(label)
		} else {
			table.AddColumn(label)
		}
	}
	table.SetColumnVisible(columnID, sort.Key == creators.SortKeyID)

	rows := make([][]string, 0, len(records))
	for _, c := range records {
		row := make([]string, len(creatorColumns))
		for i, col := range creatorColumns {
			row[i] = col.value(c, opts)
		}
		table.UpdateWidths(row...)
		rows = append(rows, row)
	}
	return &CreatorTable{table: table, rows: rows}
}

// Fit narrows the table until it fits in width display cells: first the
// column gap shrinks to one space, then the CREATED AT column is dropped.
// A width of zero or less leaves the table unchanged.
func (ct *CreatorTable) Fit(width int) *CreatorTable {
	if width <= 0 || ct.Width() <= width {
		return ct
	}
	ct.table.WithSeparator(compactSeparator)
	if ct.Width() > width {
		ct.table.SetColumnVisible(columnCreatedAt, false)
	}
	return ct
}

// Width returns the display width of a full row.
func (ct *CreatorTable) Width() int {
	return utils.DisplayWidth(ct.table.SeparatorRow())
}

// Header returns the header row.
func (ct *CreatorTable) Header() string {
	return ct.table.HeaderRow()
}

// Separator returns the dashed row drawn under the header.
func (ct *CreatorTable) Separator() string {
	return ct.table.SeparatorRow()
}

// Rows returns the formatted data rows in record order.
func (ct *CreatorTable) Rows() []string {
	lines := make([]string, len(ct.rows))
	for i, row := range ct.rows {
		lines[i] = ct.table.FormatRow(row...)
	}
	return lines
}

// Fprint writes the header, separator and rows to w.
func (ct *CreatorTable) Fprint(w io.Writer) {
	ct.table.Fprint(w)
	for _, line := range ct.Rows() {
		_, _ = fmt.Fprintln(w, line)
	}
}

// PrintCreatorTable writes the creator table to w.
//
// Numeric columns are right-aligned and the sorted column's header carries
// ▲ or ▼. Nothing is written for an empty slice; callers print
// PrintNoCreatorsMessage instead.
//
// Parameters:
//   - w: Writer to output to
//   - records: Visible records in display order
//   - sort: Active sort, used for the header indicator
//   - opts: Value rendering options
func PrintCreatorTable(w io.Writer, records []creators.Creator, sort creators.SortConfig, opts Options) {
	if len(records) == 0 {
		return
	}
	ct := NewCreatorTable(records, sort, opts)
	verbose.Printf("Creator table layout: %s", ct.table)
	ct.Fprint(w)
}
