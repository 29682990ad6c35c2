package creators

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// compareFunc compares two creators by a single field.
type compareFunc func(a, b Creator) int

// primaryComparators is the dispatch table from sort key to field comparison.
// Names and dates compare as raw strings here; collation is reserved for the
// tie-break.
var primaryComparators = map[SortKey]compareFunc{
	SortKeyID:        func(a, b Creator) int { return cmp.Compare(a.ID, b.ID) },
	SortKeyName:      func(a, b Creator) int { return strings.Compare(a.Name, b.Name) },
	SortKeyFollowers: func(a, b Creator) int { return cmp.Compare(a.Followers, b.Followers) },
	SortKeyRevenue:   func(a, b Creator) int { return cmp.Compare(a.Revenue, b.Revenue) },
	SortKeyActive:    func(a, b Creator) int { return compareBool(a.Active, b.Active) },
	SortKeyCreatedAt: func(a, b Creator) int { return strings.Compare(a.CreatedAt, b.CreatedAt) },
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// Sorter orders creators using a locale for the name tie-break.
//
// A Sorter is safe for concurrent use; each Sort call builds its own collator.
type Sorter struct {
	locale language.Tag
}

// NewSorter creates a sorter collating tie-break names for the given locale.
//
// Parameters:
//   - locale: Language tag used for name collation (e.g., language.English)
//
// Returns:
//   - *Sorter: A sorter ready for use
func NewSorter(locale language.Tag) *Sorter {
	return &Sorter{locale: locale}
}

// Locale returns the collation locale.
func (s *Sorter) Locale() language.Tag {
	return s.locale
}

var defaultSorter = NewSorter(language.English)

// DefaultSorter returns the shared sorter with English collation.
func DefaultSorter() *Sorter {
	return defaultSorter
}

// Sort orders creators with the default English collation.
//
// See Sorter.Sort for the ordering rules.
func Sort(records []Creator, cfg SortConfig) ([]Creator, error) {
	return defaultSorter.Sort(records, cfg)
}

// Sort returns a new slice holding records ordered by cfg.
//
// Ordering rules:
//   - SortKeyNone returns a copy in the existing order
//   - The primary comparison uses the field named by cfg.Key; Desc reverses it
//   - Ties on the primary field fall back to collated Name ascending, then ID
//     ascending, regardless of cfg.Direction
//
// The input slice is never reordered. The sort is stable, so records that are
// equal on every level keep their input order.
//
// Parameters:
//   - records: Creators to order
//   - cfg: Sort key and direction; an empty direction means Asc
//
// Returns:
//   - []Creator: A new ordered slice with the same length as records
//   - error: *InvalidSortKeyError for an unknown key, ErrInvalidDirection for an unknown direction
func (s *Sorter) Sort(records []Creator, cfg SortConfig) ([]Creator, error) {
	if cfg.IsNone() {
		return slices.Clone(records), nil
	}

	primary, ok := primaryComparators[cfg.Key]
	if !ok {
		return nil, &InvalidSortKeyError{Key: string(cfg.Key)}
	}

	direction, err := ParseDirection(string(cfg.Direction))
	if err != nil {
		return nil, err
	}

	collator := collate.New(s.locale)
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, func(a, b Creator) int {
		if c := primary(a, b); c != 0 {
			if direction == Desc {
				return -c
			}
			return c
		}
		if c := collator.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return sorted, nil
}
