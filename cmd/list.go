package cmd

import (
	"os"

	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/display"
	"github.com/ajxudir/creatordash/pkg/output"
	"github.com/spf13/cobra"
)

var (
	listFlags      viewFlags
	listOutputFlag string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List creators matching the current view",
	Long: `List creators after filtering by name and status and sorting by a column.

Ties on the sort column are ordered by name, then by id.`,
	Example: `  creatordash list --search am --active-only
  creatordash list --sort followers --direction desc
  creatordash list --data creators.yaml --output json`,
	RunE: runList,
}

func init() {
	listFlags.bind(listCmd)
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "table", "Output format: table, json, csv, xml")
}

// runList executes the list command.
//
// Table output prints the active filters, the creator table, a caption and
// the summary cards. Structured output writes a ListResult instead.
func runList(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(listOutputFlag)
	if err != nil {
		return err
	}

	session, err := openSession(cmd, &listFlags)
	if err != nil {
		return err
	}

	view, err := session.Apply()
	if err != nil {
		return err
	}

	if output.IsStructuredFormat(format) {
		return printListStructured(format, session, view)
	}

	printListTable(session, view)
	return nil
}

// printListTable renders the view for a terminal.
func printListTable(session *viewSession, view creators.View) {
	w := os.Stdout

	display.PrintViewHeader(w, session.state)

	if len(view.Records) == 0 {
		display.PrintNoCreatorsMessage(w)
	} else {
		display.PrintCreatorTable(w, view.Records, session.state.Sort, session.display)
		display.PrintCaption(w, len(view.Records), view.Total)
		_, _ = w.WriteString("\n")
		display.PrintSummary(w, view.Metrics, session.display)
	}

	display.PrintWarnings(w, session.warnings)
}

// printListStructured writes the view as JSON, CSV or XML to stdout.
func printListStructured(format output.Format, session *viewSession, view creators.View) error {
	result := &output.ListResult{
		Summary:  session.Summary(view),
		Creators: view.Records,
		Warnings: session.warnings,
	}
	if result.Creators == nil {
		result.Creators = []creators.Creator{}
	}
	return output.WriteListResult(os.Stdout, format, result)
}
