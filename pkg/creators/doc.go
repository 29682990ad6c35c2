// Package creators implements the derived-view pipeline for the creator dashboard.
//
// The pipeline is three stateless functions over an in-memory record set:
//
//	filtered := creators.Filter(records, "am", true)
//	sorted, err := creators.Sort(filtered, creators.SortConfig{Key: creators.SortKeyFollowers, Direction: creators.Desc})
//	metrics := creators.Aggregate(filtered)
//
// Or in one call:
//
//	view, err := creators.Apply(records, creators.ViewState{Search: "am", ActiveOnly: true})
//
// Ordering:
//
// Sort compares the selected field first. Ties fall back to the name under
// locale-aware collation, then to the id, both ascending whatever the primary
// direction. An unknown key fails with ErrInvalidSortKey instead of leaving the
// records unordered.
//
// No function here mutates its input; Sort returns a new slice.
package creators
