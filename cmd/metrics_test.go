package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ajxudir/creatordash/pkg/output"
	"github.com/ajxudir/creatordash/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetricsCommand tests the metrics command over the sample dataset.
//
// It verifies:
//   - Table output shows the four summary values
//   - Metrics cover only the filtered records
//   - Structured output carries the same numbers
func TestMetricsCommand(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := runCLI(t, "metrics", "--dir", t.TempDir())
		require.NoError(t, err)
		assert.Contains(t, out, "Total Creators")
		assert.Contains(t, out, "$18,500.00")
		assert.Contains(t, out, "$6,166.67")
		assert.NotContains(t, out, "NAME")
	})

	t.Run("filtered json", func(t *testing.T) {
		out, err := runCLI(t, "metrics", "--dir", t.TempDir(), "--search", "a", "--output", "json")
		require.NoError(t, err)

		var result output.MetricsResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		// Aman, Riya, Karan and Neha all contain "a".
		assert.Equal(t, 4, result.Metrics.TotalCreators)
		assert.Equal(t, 3, result.Metrics.ActiveCreators)
		assert.InDelta(t, 18500, result.Metrics.TotalRevenue, 0.001)
		assert.InDelta(t, 6166.666, result.Metrics.AvgRevenuePerActive, 0.001)
	})

	t.Run("no active creators", func(t *testing.T) {
		out, err := runCLI(t, "metrics", "--dir", t.TempDir(), "--search", "riya", "-o", "csv")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "TOTAL_CREATORS,ACTIVE_CREATORS,TOTAL_REVENUE,AVG_REVENUE_PER_ACTIVE", lines[0])
		assert.Equal(t, "1,0,0,0", lines[1])
	})

	t.Run("sort does not change metrics", func(t *testing.T) {
		dir := t.TempDir()
		path := testutil.WriteDataset(t, dir, testutil.Creators())

		unsorted, err := runCLI(t, "metrics", "--data", path, "-o", "json")
		require.NoError(t, err)
		sorted, err := runCLI(t, "metrics", "--data", path, "-o", "json", "--sort", "revenue", "--direction", "desc")
		require.NoError(t, err)

		var a, b output.MetricsResult
		require.NoError(t, json.Unmarshal([]byte(unsorted), &a))
		require.NoError(t, json.Unmarshal([]byte(sorted), &b))
		assert.Equal(t, a.Metrics, b.Metrics)
	})
}
