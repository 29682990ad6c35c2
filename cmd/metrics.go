package cmd

import (
	"os"

	"github.com/ajxudir/creatordash/pkg/display"
	"github.com/ajxudir/creatordash/pkg/output"
	"github.com/spf13/cobra"
)

var (
	metricsFlags      viewFlags
	metricsOutputFlag string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Summarize the creators matching the current view",
	Long: `Print total creators, active creators, total revenue and average revenue
per active creator for the records that pass the search and status filters.`,
	Example: `  creatordash metrics --active-only
  creatordash metrics --search am --output json`,
	RunE: runMetrics,
}

func init() {
	metricsFlags.bind(metricsCmd)
	metricsCmd.Flags().StringVarP(&metricsOutputFlag, "output", "o", "table", "Output format: table, json, csv, xml")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(metricsOutputFlag)
	if err != nil {
		return err
	}

	session, err := openSession(cmd, &metricsFlags)
	if err != nil {
		return err
	}

	view, err := session.Apply()
	if err != nil {
		return err
	}

	if output.IsStructuredFormat(format) {
		return output.WriteMetricsResult(os.Stdout, format, &output.MetricsResult{
			Summary:  session.Summary(view),
			Metrics:  output.NewMetricsEntry(view.Metrics),
			Warnings: session.warnings,
		})
	}

	display.PrintViewHeader(os.Stdout, session.state)
	display.PrintSummary(os.Stdout, view.Metrics, session.display)
	display.PrintWarnings(os.Stdout, session.warnings)
	return nil
}
