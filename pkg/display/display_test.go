package display

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/verbose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecords = []creators.Creator{
	{ID: 1, Name: "Aman", Followers: 1200, Revenue: 4500, Active: true, CreatedAt: "2025-01-10"},
	{ID: 2, Name: "Riya", Followers: 540, Revenue: 0, Active: false, CreatedAt: "2025-01-12"},
	{ID: 3, Name: "Karan", Followers: 9800, Revenue: 12000, Active: true, CreatedAt: "2025-01-21"},
}

func TestFormatRevenue(t *testing.T) {
	tests := []struct {
		value  float64
		symbol string
		want   string
	}{
		{4500, "$", "$4,500.00"},
		{0, "$", "$0.00"},
		{12000, "", "$12,000.00"},
		{1234567.5, "€", "€1,234,567.50"},
		{6166.666666666667, "$", "$6,166.67"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRevenue(tt.value, tt.symbol))
		})
	}
}

func TestFormatFollowers(t *testing.T) {
	assert.Equal(t, "0", FormatFollowers(0))
	assert.Equal(t, "540", FormatFollowers(540))
	assert.Equal(t, "9,800", FormatFollowers(9800))
	assert.Equal(t, "1,000,000", FormatFollowers(1000000))
}

// TestFormatDate tests the behavior of FormatDate.
//
// It verifies:
//   - ISO dates render month/day/year without padding by default
//   - RFC 3339 timestamps are accepted
//   - Custom layouts are honored
//   - Unparseable values are returned unchanged
func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1/10/2025", FormatDate("2025-01-10", ""))
	assert.Equal(t, "2/2/2025", FormatDate("2025-02-02T08:30:00Z", ""))
	assert.Equal(t, "10 Jan 2025", FormatDate("2025-01-10", "2 Jan 2006"))
	assert.Equal(t, "yesterday", FormatDate("yesterday", ""))
	assert.Equal(t, "", FormatDate("", ""))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Active", StatusLabel(true))
	assert.Equal(t, "Inactive", StatusLabel(false))
	assert.Equal(t, "🟢 Active", FormatStatus(true))
	assert.Equal(t, "⚪ Inactive", FormatStatus(false))
}

func TestSortIndicator(t *testing.T) {
	desc := creators.SortConfig{Key: creators.SortKeyFollowers, Direction: creators.Desc}
	asc := creators.SortConfig{Key: creators.SortKeyName, Direction: creators.Asc}

	assert.Equal(t, "▼", SortIndicator(creators.SortKeyFollowers, desc))
	assert.Equal(t, "", SortIndicator(creators.SortKeyName, desc))
	assert.Equal(t, "▲", SortIndicator(creators.SortKeyName, asc))
	assert.Equal(t, "▲", SortIndicator(creators.SortKeyName, creators.SortConfig{Key: creators.SortKeyName}))
	assert.Equal(t, "", SortIndicator(creators.SortKeyNone, creators.SortConfig{}))

	assert.Equal(t, "FOLLOWERS ▼", HeaderLabel("FOLLOWERS", creators.SortKeyFollowers, desc))
	assert.Equal(t, "NAME", HeaderLabel("NAME", creators.SortKeyName, desc))
}

// TestPrintCreatorTable tests table rendering.
//
// It verifies:
//   - Rows keep the given order and values are formatted
//   - The sorted header carries the indicator
//   - The ID column appears only when sorting by id
//   - Empty input writes nothing
func TestPrintCreatorTable(t *testing.T) {
	t.Run("sorted by followers", func(t *testing.T) {
		var buf bytes.Buffer
		sort := creators.SortConfig{Key: creators.SortKeyFollowers, Direction: creators.Desc}
		PrintCreatorTable(&buf, sampleRecords, sort, Options{})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 5)
		assert.True(t, strings.HasPrefix(lines[0], "NAME"))
		assert.Contains(t, lines[0], "FOLLOWERS ▼")
		assert.NotContains(t, lines[0], "ID")
		assert.True(t, strings.HasPrefix(lines[1], "-----"))

		assert.True(t, strings.HasPrefix(lines[2], "Aman "))
		assert.Contains(t, lines[2], "1,200")
		assert.Contains(t, lines[2], "$4,500.00")
		assert.Contains(t, lines[2], "🟢 Active")
		assert.Contains(t, lines[2], "1/10/2025")
		assert.Contains(t, lines[3], "⚪ Inactive")
		assert.True(t, strings.HasPrefix(lines[4], "Karan"))
	})

	t.Run("numeric columns right aligned", func(t *testing.T) {
		var buf bytes.Buffer
		PrintCreatorTable(&buf, sampleRecords, creators.SortConfig{}, Options{})

		lines := strings.Split(buf.String(), "\n")
		amanEnd := strings.Index(lines[2], "$4,500.00") + len("$4,500.00")
		karanEnd := strings.Index(lines[4], "$12,000.00") + len("$12,000.00")
		assert.Equal(t, amanEnd, karanEnd)
	})

	t.Run("id column when sorting by id", func(t *testing.T) {
		var buf bytes.Buffer
		PrintCreatorTable(&buf, sampleRecords, creators.SortConfig{Key: creators.SortKeyID, Direction: creators.Asc}, Options{CurrencySymbol: "€"})

		assert.True(t, strings.HasPrefix(buf.String(), "ID ▲"))
		assert.Contains(t, buf.String(), "€12,000.00")
	})

	t.Run("custom date layout", func(t *testing.T) {
		var buf bytes.Buffer
		PrintCreatorTable(&buf, sampleRecords[:1], creators.SortConfig{}, Options{DateLayout: "2006/01/02"})
		assert.Contains(t, buf.String(), "2025/01/10")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		PrintCreatorTable(&buf, nil, creators.SortConfig{}, Options{})
		assert.Empty(t, buf.String())
	})

	t.Run("verbose logs layout", func(t *testing.T) {
		var log bytes.Buffer
		verbose.SetWriter(&log)
		verbose.Enable()
		t.Cleanup(func() {
			verbose.Disable()
			verbose.SetWriter(os.Stderr)
		})

		var buf bytes.Buffer
		PrintCreatorTable(&buf, sampleRecords, creators.SortConfig{}, Options{})
		assert.Contains(t, log.String(), "Creator table layout: Table{columns: [ID:2 (hidden), NAME:5")
	})
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, creators.Metrics{
		TotalCreators:       4,
		ActiveCreators:      3,
		TotalRevenue:        18500,
		AvgRevenuePerActive: 6166.666666666667,
	}, Options{})

	assert.Equal(t,
		"Total Creators        4\n"+
			"Active Creators       3\n"+
			"Total Revenue         $18,500.00\n"+
			"Avg Revenue / Active  $6,166.67\n",
		buf.String())
}

func TestPrintCaption(t *testing.T) {
	var buf bytes.Buffer
	PrintCaption(&buf, 2, 4)
	assert.Equal(t, "Showing 2 of 4 total records\n", buf.String())
}

func TestPrintNoCreatorsMessage(t *testing.T) {
	var buf bytes.Buffer
	PrintNoCreatorsMessage(&buf)
	assert.Equal(t, "No creators found\nTry adjusting your filters.\n", buf.String())
}

func TestPrintViewHeader(t *testing.T) {
	var buf bytes.Buffer
	PrintViewHeader(&buf, creators.ViewState{})
	assert.Empty(t, buf.String())

	PrintViewHeader(&buf, creators.ViewState{
		Search:     "am",
		ActiveOnly: true,
		Sort:       creators.SortConfig{Key: creators.SortKeyRevenue, Direction: creators.Desc},
	})
	assert.Equal(t, "Search: \"am\" | Active only | Sort: revenue desc\n\n", buf.String())
}

// TestPrintWarnings tests the behavior of PrintWarnings.
//
// It verifies:
//   - Nothing is printed for no warnings
//   - Each warning gets the icon prefix after a blank line
func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	PrintWarnings(&buf, nil)
	assert.Empty(t, buf.String())

	PrintWarnings(&buf, []string{"first", "second"})
	assert.Equal(t, "\n⚠️ first\n⚠️ second\n", buf.String())
}

func TestWarningCollector(t *testing.T) {
	c := NewWarningCollector()

	n, err := c.Write([]byte("one\n\n  two  \n"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, []string{"one", "two"}, c.Messages())

	msgs := c.Messages()
	msgs[0] = "changed"
	assert.Equal(t, "one", c.Messages()[0])

	c.Reset()
	assert.Empty(t, c.Messages())
}

// TestCreatorTable tests the shared creator table layout.
//
// It verifies:
//   - Long names are cut at MaxNameWidth
//   - Fit compacts the column gap before dropping CREATED AT
//   - A non-positive width leaves the table unchanged
func TestCreatorTable(t *testing.T) {
	sort := creators.SortConfig{}

	t.Run("name truncation", func(t *testing.T) {
		records := []creators.Creator{{ID: 1, Name: "Alexandria Montgomery", Active: true, CreatedAt: "2025-01-10"}}
		rows := NewCreatorTable(records, sort, Options{MaxNameWidth: 8}).Rows()
		require.Len(t, rows, 1)
		assert.True(t, strings.HasPrefix(rows[0], "Alexand… "))
		assert.Contains(t, rows[0], "🟢 Active")

		rows = NewCreatorTable(records, sort, Options{}).Rows()
		assert.True(t, strings.HasPrefix(rows[0], "Alexandria Montgomery"))
	})

	t.Run("fit compacts gap first", func(t *testing.T) {
		full := NewCreatorTable(sampleRecords, sort, Options{}).Width()
		ct := NewCreatorTable(sampleRecords, sort, Options{}).Fit(full - 1)

		assert.Contains(t, ct.Header(), "CREATED AT")
		assert.True(t, strings.HasPrefix(ct.Header(), "NAME  FOLLOWERS"))
		assert.Equal(t, full-4, ct.Width())
	})

	t.Run("fit drops created at", func(t *testing.T) {
		full := NewCreatorTable(sampleRecords, sort, Options{}).Width()
		ct := NewCreatorTable(sampleRecords, sort, Options{}).Fit(full - 10)

		assert.NotContains(t, ct.Header(), "CREATED AT")
		assert.NotContains(t, ct.Rows()[0], "1/10/2025")
		assert.Contains(t, ct.Rows()[0], "🟢 Active")
	})

	t.Run("no width", func(t *testing.T) {
		ct := NewCreatorTable(sampleRecords, sort, Options{})
		full := ct.Width()
		assert.Equal(t, full, ct.Fit(0).Width())
		assert.True(t, strings.HasPrefix(ct.Header(), "NAME   FOLLOWERS"))
	})
}
