package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ajxudir/creatordash/pkg/creators"
)

// WriteListResult writes list results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: List result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteListResult(w io.Writer, format Format, result *ListResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeListCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeListCSV writes one row per visible creator. Summary and warnings are
// not representable in a flat table and are omitted.
func writeListCSV(f *Formatter, result *ListResult) error {
	headers := []string{"ID", "NAME", "FOLLOWERS", "REVENUE", "ACTIVE", "CREATED_AT"}
	rows := make([][]string, 0, len(result.Creators))
	for _, c := range result.Creators {
		rows = append(rows, creatorRow(c))
	}
	return f.WriteCSV(headers, rows)
}

func creatorRow(c creators.Creator) []string {
	return []string{
		strconv.Itoa(c.ID),
		c.Name,
		strconv.Itoa(c.Followers),
		formatNumber(c.Revenue),
		strconv.FormatBool(c.Active),
		c.CreatedAt,
	}
}

// formatNumber renders a float without exponent or trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteMetricsResult writes metrics results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Metrics result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteMetricsResult(w io.Writer, format Format, result *MetricsResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeMetricsCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeMetricsCSV(f *Formatter, result *MetricsResult) error {
	headers := []string{"TOTAL_CREATORS", "ACTIVE_CREATORS", "TOTAL_REVENUE", "AVG_REVENUE_PER_ACTIVE"}
	m := result.Metrics
	rows := [][]string{{
		strconv.Itoa(m.TotalCreators),
		strconv.Itoa(m.ActiveCreators),
		formatNumber(m.TotalRevenue),
		formatNumber(m.AvgRevenuePerActive),
	}}
	return f.WriteCSV(headers, rows)
}
