package output

import (
	"encoding/xml"

	"github.com/ajxudir/creatordash/pkg/creators"
)

// ViewSummary describes the view a result was produced from.
//
// Fields:
//   - Source: Dataset the records came from ("sample" or a file path)
//   - Search: Name query, empty when unfiltered
//   - ActiveOnly: Whether inactive creators were excluded
//   - Sort: Sort description (e.g., "followers desc" or "none")
//   - Total: Number of records before filtering
//   - Visible: Number of records after filtering
type ViewSummary struct {
	Source     string `json:"source" xml:"source"`
	Search     string `json:"search" xml:"search"`
	ActiveOnly bool   `json:"activeOnly" xml:"activeOnly"`
	Sort       string `json:"sort" xml:"sort"`
	Total      int    `json:"total" xml:"total"`
	Visible    int    `json:"visible" xml:"visible"`
}

// ListResult represents the output data for the list command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: View description and record counts
//   - Creators: Visible records in display order
//   - Warnings: Non-fatal warnings collected while loading
type ListResult struct {
	XMLName  xml.Name           `json:"-" xml:"listResult"`
	Summary  ViewSummary        `json:"summary" xml:"summary"`
	Creators []creators.Creator `json:"creators" xml:"creators>creator"`
	Warnings []string           `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// MetricsEntry mirrors creators.Metrics with output tags.
type MetricsEntry struct {
	TotalCreators       int     `json:"totalCreators" xml:"totalCreators"`
	ActiveCreators      int     `json:"activeCreators" xml:"activeCreators"`
	TotalRevenue        float64 `json:"totalRevenue" xml:"totalRevenue"`
	AvgRevenuePerActive float64 `json:"avgRevenuePerActive" xml:"avgRevenuePerActive"`
}

// NewMetricsEntry converts pipeline metrics for output.
func NewMetricsEntry(m creators.Metrics) MetricsEntry {
	return MetricsEntry{
		TotalCreators:       m.TotalCreators,
		ActiveCreators:      m.ActiveCreators,
		TotalRevenue:        m.TotalRevenue,
		AvgRevenuePerActive: m.AvgRevenuePerActive,
	}
}

// MetricsResult represents the output data for the metrics command.
type MetricsResult struct {
	XMLName  xml.Name     `json:"-" xml:"metricsResult"`
	Summary  ViewSummary  `json:"summary" xml:"summary"`
	Metrics  MetricsEntry `json:"metrics" xml:"metrics"`
	Warnings []string     `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}
