package cmd

import (
	"fmt"

	"github.com/ajxudir/creatordash/pkg/display"
	"github.com/ajxudir/creatordash/pkg/errors"
	"github.com/ajxudir/creatordash/pkg/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var dashboardFlags viewFlags

// runProgramFunc starts a bubbletea program; tests replace it to avoid a terminal.
var runProgramFunc = func(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithAltScreen()).Run()
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive creator dashboard",
	Long: `Open a full-screen dashboard with a search box, an active-only toggle,
sortable columns and live summary cards.

Keys:
  type     search by name (the search box starts focused)
  esc      leave the search box; press again to quit
  /        return to the search box
  tab      toggle active-only
  1-6      sort by name, followers, revenue, status, created date, id
  0        clear the sort
  q        quit`,
	RunE: runDashboard,
}

func init() {
	dashboardFlags.bind(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		return errors.NewExitError(errors.ExitConfigError, &errors.ValidationError{
			Category: errors.ValidationCategoryView,
			Field:    "--verbose",
			Message:  "not supported with the dashboard: log lines would corrupt the screen",
		})
	}

	session, err := openSession(cmd, &dashboardFlags)
	if err != nil {
		return err
	}

	model := tui.New(session.records, session.state, tui.Options{
		Sorter:  session.sorter,
		Display: session.display,
		Source:  session.provider.Source(),
	})
	if err := model.Err(); err != nil {
		return err
	}

	display.PrintWarnings(cmd.ErrOrStderr(), session.warnings)

	if _, err := runProgramFunc(model); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
