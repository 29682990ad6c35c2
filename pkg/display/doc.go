// Package display provides terminal presentation for creator views.
//
// Value Formatting:
//
//	display.FormatRevenue(4500, "$")          // "$4,500.00"
//	display.FormatFollowers(9800)             // "9,800"
//	display.FormatDate("2025-01-10", "")      // "1/10/2025"
//
// Tables and Messages:
//
//	display.PrintCreatorTable(os.Stdout, view.Records, sort, opts)
//	display.PrintCaption(os.Stdout, len(view.Records), view.Total)
//	display.PrintSummary(os.Stdout, view.Metrics, opts)
//	display.PrintWarnings(os.Stderr, collector.Messages())
//
// Column layout and padding come from pkg/output.
package display
