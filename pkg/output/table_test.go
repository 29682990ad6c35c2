package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	table := NewTable()
	require.NotNil(t, table)
	assert.Equal(t, 0, len(table.columns))
	assert.Equal(t, "  ", table.separator)
}

// TestTableAddColumn tests the behavior of AddColumn and AddRightColumn.
//
// It verifies:
//   - Adds columns with header width
//   - Records alignment
//   - Chain returns same table instance
func TestTableAddColumn(t *testing.T) {
	t.Run("adds columns with header width", func(t *testing.T) {
		table := NewTable().
			AddColumn("ID").
			AddColumn("NAME").
			AddRightColumn("FOLLOWERS")
		assert.Equal(t, 3, len(table.columns))
		assert.Equal(t, 2, table.columns[0].Width)
		assert.Equal(t, 4, table.columns[1].Width)
		assert.Equal(t, 9, table.columns[2].Width)
		assert.Equal(t, AlignRight, table.columns[2].Align)
	})

	t.Run("sort indicator counts as one cell", func(t *testing.T) {
		table := NewTable().AddColumn("NAME ▲")
		assert.Equal(t, 6, table.columns[0].Width)
	})

	t.Run("chain returns same table", func(t *testing.T) {
		table := NewTable()
		assert.Same(t, table, table.AddColumn("TEST"))
		assert.Same(t, table, table.AddRightColumn("N"))
	})
}

func TestTableUpdateWidths(t *testing.T) {
	table := NewTable().AddColumn("ID").AddColumn("NAME")

	table.UpdateWidths("1", "Karan")
	assert.Equal(t, 2, table.columns[0].Width, "narrower value keeps header width")
	assert.Equal(t, 5, table.columns[1].Width)

	table.UpdateWidths("10", "李小龍", "ignored")
	assert.Equal(t, 6, table.columns[1].Width, "wide runes count double")
	assert.Equal(t, 2, len(table.columns))
}

// TestTableRows tests header, separator and data row formatting.
//
// It verifies:
//   - Left columns pad on the right and right columns on the left
//   - Trailing padding is trimmed
//   - Hidden columns are skipped but still consume a value
func TestTableRows(t *testing.T) {
	table := NewTable().
		AddColumn("NAME").
		AddRightColumn("REVENUE").
		AddColumn("NOTE").
		AddColumn("STATUS").
		SetColumnVisible(2, false)
	table.UpdateWidths("Karan", "$12,000.00", "hidden", "Active")

	assert.Equal(t, "NAME      REVENUE  STATUS", table.HeaderRow())
	assert.Equal(t, "-----  ----------  ------", table.SeparatorRow())
	assert.Equal(t, "Riya        $0.00  Inactive", table.FormatRow("Riya", "$0.00", "x", "Inactive"))
	assert.Equal(t, "Aman    $4,500.00", table.FormatRow("Aman", "$4,500.00"))

	table.SetColumnVisible(2, true)
	assert.Equal(t, "NAME      REVENUE  NOTE    STATUS", table.HeaderRow())

	table.SetColumnVisible(99, false)
	assert.Equal(t, "NAME      REVENUE  NOTE    STATUS", table.HeaderRow())
}

func TestTableWithSeparator(t *testing.T) {
	table := NewTable().WithSeparator(" | ").AddColumn("A").AddColumn("B")
	assert.Equal(t, "A | B", table.HeaderRow())
	assert.Equal(t, "- | -", table.SeparatorRow())
}

func TestTableFprint(t *testing.T) {
	var buf bytes.Buffer
	NewTable().AddColumn("ID").AddRightColumn("FOLLOWERS").Fprint(&buf)
	assert.Equal(t, "ID  FOLLOWERS\n--  ---------\n", buf.String())
}

func TestTableString(t *testing.T) {
	table := NewTable().
		AddColumn("ID").
		AddRightColumn("FOLLOWERS").
		AddColumn("GROUP").
		SetColumnVisible(2, false)
	assert.Equal(t, "Table{columns: [ID:2, FOLLOWERS:9 (right), GROUP:5 (hidden)]}", table.String())
}
