package creators

import (
	"errors"
	"fmt"
	"strings"
)

// Creator is one tracked account on the dashboard.
//
// Fields:
//   - ID: Externally assigned unique identifier, used only as the final tie-break
//   - Name: Display name; searched case-insensitively
//   - Followers: Non-negative follower count
//   - Revenue: Non-negative revenue in currency units
//   - Active: Status flag
//   - CreatedAt: Creation date in ISO form (e.g., "2025-01-10")
type Creator struct {
	ID        int     `json:"id" yaml:"id" xml:"id"`
	Name      string  `json:"name" yaml:"name" xml:"name"`
	Followers int     `json:"followers" yaml:"followers" xml:"followers"`
	Revenue   float64 `json:"revenue" yaml:"revenue" xml:"revenue"`
	Active    bool    `json:"active" yaml:"active" xml:"active"`
	CreatedAt string  `json:"createdAt" yaml:"createdAt" xml:"createdAt"`
}

// SortKey names the field a creator list is ordered by.
type SortKey string

const (
	// SortKeyNone leaves records in their existing order.
	SortKeyNone SortKey = ""
	// SortKeyID orders by identifier.
	SortKeyID SortKey = "id"
	// SortKeyName orders by raw name.
	SortKeyName SortKey = "name"
	// SortKeyFollowers orders by follower count.
	SortKeyFollowers SortKey = "followers"
	// SortKeyRevenue orders by revenue.
	SortKeyRevenue SortKey = "revenue"
	// SortKeyActive orders inactive before active.
	SortKeyActive SortKey = "active"
	// SortKeyCreatedAt orders by creation date.
	SortKeyCreatedAt SortKey = "createdAt"
)

// Direction is the direction of the primary sort comparison.
type Direction string

const (
	// Asc yields increasing order.
	Asc Direction = "asc"
	// Desc yields decreasing order.
	Desc Direction = "desc"
)

// ErrInvalidSortKey is returned when a sort key is not one of SortKeys().
var ErrInvalidSortKey = errors.New("invalid sort key")

// ErrInvalidDirection is returned when a direction is neither asc nor desc.
var ErrInvalidDirection = errors.New("invalid sort direction")

// InvalidSortKeyError reports the unrecognized key.
//
// It matches ErrInvalidSortKey via errors.Is.
type InvalidSortKeyError struct {
	Key string
}

func (e *InvalidSortKeyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidSortKey, e.Key)
}

// Is reports whether target is ErrInvalidSortKey.
func (e *InvalidSortKeyError) Is(target error) bool {
	return target == ErrInvalidSortKey
}

// SortConfig selects the sort field and direction.
type SortConfig struct {
	Key       SortKey   `json:"key" yaml:"key"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// IsNone reports whether the config leaves order untouched.
func (c SortConfig) IsNone() bool {
	return c.Key == SortKeyNone
}

// Toggle returns the config produced by selecting key as a column header.
//
// Selecting the current key while ascending switches to descending; any other
// selection (a different key, or the current key while descending) sorts by
// key ascending.
//
// Parameters:
//   - key: The column that was selected
//
// Returns:
//   - SortConfig: The next sort configuration
//
// Example:
//
//	cfg := SortConfig{Key: SortKeyFollowers, Direction: Asc}
//	cfg = cfg.Toggle(SortKeyFollowers) // followers desc
//	cfg = cfg.Toggle(SortKeyFollowers) // followers asc
func (c SortConfig) Toggle(key SortKey) SortConfig {
	direction := Asc
	if c.Key == key && c.Direction != Desc {
		direction = Desc
	}
	return SortConfig{Key: key, Direction: direction}
}

// String renders the config as "key direction", or "none".
func (c SortConfig) String() string {
	if c.IsNone() {
		return "none"
	}
	dir := c.Direction
	if dir == "" {
		dir = Asc
	}
	return fmt.Sprintf("%s %s", c.Key, dir)
}

// Metrics summarizes a set of creators.
//
// Fields:
//   - TotalCreators: Number of records
//   - ActiveCreators: Number of records with Active set
//   - TotalRevenue: Revenue summed over all records
//   - AvgRevenuePerActive: Revenue of active records divided by ActiveCreators, 0 when none are active
type Metrics struct {
	TotalCreators       int     `json:"totalCreators" xml:"totalCreators"`
	ActiveCreators      int     `json:"activeCreators" xml:"activeCreators"`
	TotalRevenue        float64 `json:"totalRevenue" xml:"totalRevenue"`
	AvgRevenuePerActive float64 `json:"avgRevenuePerActive" xml:"avgRevenuePerActive"`
}

// sortKeyAliases maps accepted spellings (lower-cased) to sort keys.
var sortKeyAliases = map[string]SortKey{
	"":           SortKeyNone,
	"none":       SortKeyNone,
	"id":         SortKeyID,
	"name":       SortKeyName,
	"followers":  SortKeyFollowers,
	"revenue":    SortKeyRevenue,
	"active":     SortKeyActive,
	"createdat":  SortKeyCreatedAt,
	"created_at": SortKeyCreatedAt,
	"created":    SortKeyCreatedAt,
}

// SortKeys returns the orderable keys in column order.
//
// Returns:
//   - []SortKey: Every key except SortKeyNone
func SortKeys() []SortKey {
	return []SortKey{SortKeyID, SortKeyName, SortKeyFollowers, SortKeyRevenue, SortKeyActive, SortKeyCreatedAt}
}

// SortKeyNames returns SortKeys() as strings, prefixed with "none".
func SortKeyNames() []string {
	names := []string{"none"}
	for _, k := range SortKeys() {
		names = append(names, string(k))
	}
	return names
}

// ParseSortKey parses a user-supplied sort key.
//
// Parsing is case-insensitive and accepts camelCase or snake_case field
// names. An empty string or "none" yields SortKeyNone.
//
// Parameters:
//   - s: Key to parse (e.g., "followers", "createdAt", "created_at")
//
// Returns:
//   - SortKey: The parsed key
//   - error: *InvalidSortKeyError when s names no orderable field
func ParseSortKey(s string) (SortKey, error) {
	if key, ok := sortKeyAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return key, nil
	}
	return SortKeyNone, &InvalidSortKeyError{Key: s}
}

// ParseDirection parses "asc" or "desc" case-insensitively. Empty means Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Asc, nil
	case "desc", "descending":
		return Desc, nil
	default:
		return Asc, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// ParseSortConfig parses a key and direction pair.
func ParseSortConfig(key, direction string) (SortConfig, error) {
	k, err := ParseSortKey(key)
	if err != nil {
		return SortConfig{}, err
	}
	d, err := ParseDirection(direction)
	if err != nil {
		return SortConfig{}, err
	}
	return SortConfig{Key: k, Direction: d}, nil
}
