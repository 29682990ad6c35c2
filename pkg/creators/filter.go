package creators

import "strings"

// Filter returns the creators matching a name query and the active constraint.
//
// Both predicates must hold for a record to be kept:
//   - Name contains query, compared case-insensitively (an empty query matches all)
//   - Active is true, when activeOnly is set
//
// The relative order of the input is preserved and the input is not modified.
//
// Parameters:
//   - records: Creators to filter
//   - query: Free-text name query, possibly empty
//   - activeOnly: Restrict to active creators
//
// Returns:
//   - []Creator: A new, non-nil slice of matching creators
//
// Example:
//
//	active := creators.Filter(all, "", true)
func Filter(records []Creator, query string, activeOnly bool) []Creator {
	lowerQuery := strings.ToLower(query)
	filtered := make([]Creator, 0, len(records))

	for _, c := range records {
		if !matchesName(c, lowerQuery) {
			continue
		}
		if !matchesActive(c, activeOnly) {
			continue
		}
		filtered = append(filtered, c)
	}

	return filtered
}

// matchesName expects lowerQuery to be lower-cased already.
func matchesName(c Creator, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), lowerQuery)
}

func matchesActive(c Creator, activeOnly bool) bool {
	return !activeOnly || c.Active
}
