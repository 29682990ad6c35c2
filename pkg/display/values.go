package display

import (
	"time"

	"github.com/ajxudir/creatordash/pkg/constants"
	"github.com/ajxudir/creatordash/pkg/utils"
	"github.com/dustin/go-humanize"
)

// Options controls how values are rendered.
//
// Fields:
//   - CurrencySymbol: Revenue prefix; empty means "$"
//   - DateLayout: Go time layout for createdAt; empty means "1/2/2006"
//   - MaxNameWidth: Names wider than this are truncated; 0 means no limit
type Options struct {
	CurrencySymbol string
	DateLayout     string
	MaxNameWidth   int
}

const defaultDateLayout = "1/2/2006"

// isoLayouts are the createdAt forms FormatDate can parse.
var isoLayouts = []string{"2006-01-02", time.RFC3339}

// FormatRevenue renders a currency amount with two decimals and thousands
// separators.
//
// Parameters:
//   - v: Amount in currency units
//   - symbol: Prefix such as "$"; empty means "$"
//
// Returns:
//   - string: e.g. "$12,000.00"
func FormatRevenue(v float64, symbol string) string {
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	return symbol + humanize.FormatFloat("#,###.##", v)
}

// FormatFollowers renders a count with thousands separators.
func FormatFollowers(n int) string {
	return humanize.Comma(int64(n))
}

// FormatDate renders an ISO date with layout. Values that do not parse are
// returned unchanged so bad data stays visible.
//
// Parameters:
//   - iso: Date as stored on the record (e.g., "2025-01-10")
//   - layout: Go time layout; empty means month/day/year
//
// Returns:
//   - string: e.g. "1/10/2025"
func FormatDate(iso, layout string) string {
	if layout == "" {
		layout = defaultDateLayout
	}
	for _, l := range isoLayouts {
		if t, err := time.Parse(l, iso); err == nil {
			return t.Format(layout)
		}
	}
	return iso
}

// StatusLabel returns "Active" or "Inactive".
func StatusLabel(active bool) string {
	if active {
		return constants.StatusActive
	}
	return constants.StatusInactive
}

// FormatStatus returns the status label with its icon, e.g. "🟢 Active".
func FormatStatus(active bool) string {
	if active {
		return constants.IconActive + " " + StatusLabel(active)
	}
	return constants.IconInactive + " " + StatusLabel(active)
}

func (o Options) symbol() string {
	if o.CurrencySymbol == "" {
		return constants.DefaultCurrencySymbol
	}
	return o.CurrencySymbol
}

func (o Options) name(name string) string {
	if o.MaxNameWidth > 0 {
		return utils.Truncate(name, o.MaxNameWidth)
	}
	return name
}
