package creators

// Aggregate computes summary metrics over records.
//
// TotalRevenue covers every record. AvgRevenuePerActive divides the revenue of
// active records by their count and is exactly 0 when no record is active.
// The result does not depend on input order.
//
// Parameters:
//   - records: Creators to summarize, possibly empty
//
// Returns:
//   - Metrics: Zero-valued for empty input
func Aggregate(records []Creator) Metrics {
	var m Metrics
	var activeRevenue float64

	for _, c := range records {
		m.TotalCreators++
		m.TotalRevenue += c.Revenue
		if c.Active {
			m.ActiveCreators++
			activeRevenue += c.Revenue
		}
	}

	if m.ActiveCreators > 0 {
		m.AvgRevenuePerActive = activeRevenue / float64(m.ActiveCreators)
	}

	return m
}
