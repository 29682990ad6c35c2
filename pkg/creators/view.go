package creators

// ViewState is the caller-owned state that drives the pipeline.
//
// Fields:
//   - Search: Name query
//   - ActiveOnly: Restrict to active creators
//   - Sort: Ordering of the visible records
type ViewState struct {
	Search     string     `json:"search" yaml:"search"`
	ActiveOnly bool       `json:"activeOnly" yaml:"active_only"`
	Sort       SortConfig `json:"sort" yaml:"sort"`
}

// View is the result of running the pipeline once.
//
// Fields:
//   - Records: Filtered records in display order
//   - Metrics: Metrics over the filtered records
//   - Total: Number of records before filtering
type View struct {
	Records []Creator
	Metrics Metrics
	Total   int
}

// Apply runs filter, sort and aggregate with the default English collation.
func Apply(records []Creator, state ViewState) (View, error) {
	return defaultSorter.Apply(records, state)
}

// Apply runs the full pipeline: filter, then sort the filtered records, then
// aggregate the filtered records. Metrics do not depend on the sort order.
//
// Parameters:
//   - records: Full record set
//   - state: Current view state
//
// Returns:
//   - View: Visible records, their metrics and the unfiltered count
//   - error: Sort configuration errors from Sort
func (s *Sorter) Apply(records []Creator, state ViewState) (View, error) {
	filtered := Filter(records, state.Search, state.ActiveOnly)

	sorted, err := s.Sort(filtered, state.Sort)
	if err != nil {
		return View{}, err
	}

	return View{
		Records: sorted,
		Metrics: Aggregate(filtered),
		Total:   len(records),
	}, nil
}
