// Package tui implements the interactive creator dashboard.
//
// The model keeps the full record set and a creators.ViewState. Every key
// that changes the state re-runs the pipeline, so the table, caption and
// summary cards always describe the same visible records.
package tui

import (
	"fmt"
	"strings"

	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/display"
	"github.com/ajxudir/creatordash/pkg/verbose"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxNameWidth truncates long names in the table.
const maxNameWidth = 24

// Options configures a dashboard model.
//
// Fields:
//   - Sorter: Sorter used for every pipeline run; nil means English collation
//   - Display: Value rendering options
//   - Source: Dataset description shown in the title
type Options struct {
	Sorter  *creators.Sorter
	Display display.Options
	Source  string
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	records []creators.Creator
	state   creators.ViewState
	view    creators.View
	err     error

	input  textinput.Model
	keys   keyMap
	styles Styles
	opts   Options
	width  int
}

// New creates a dashboard over records starting from state.
//
// The search box starts focused. The pipeline runs once so View has content
// before the first message.
func New(records []creators.Creator, state creators.ViewState, opts Options) Model {
	if opts.Sorter == nil {
		opts.Sorter = creators.DefaultSorter()
	}

	input := textinput.New()
	input.Placeholder = "Search by name..."
	input.Prompt = "Search: "
	input.CharLimit = 64
	input.Width = 32
	input.SetValue(state.Search)
	input.Focus()

	m := Model{
		records: records,
		state:   state,
		input:   input,
		keys:    defaultKeyMap(),
		styles:  DefaultStyles(),
		opts:    opts,
	}
	m.refresh()
	return m
}

// State returns the current view state.
func (m Model) State() creators.ViewState {
	return m.state
}

// CurrentView returns the result of the last pipeline run.
func (m Model) CurrentView() creators.View {
	return m.view
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool {
	return m.input.Focused()
}

// Err returns the error of the last pipeline run, if any.
func (m Model) Err() error {
	return m.err
}

// refresh re-runs the pipeline for the current state. On error the previous
// view is kept so the screen does not go blank.
func (m *Model) refresh() {
	view, err := m.opts.Sorter.Apply(m.records, m.state)
	m.err = err
	if err != nil {
		return
	}
	m.view = view
	verbose.ViewApplied(m.state.Search, m.state.ActiveOnly, m.state.Sort.String(), len(view.Records), view.Total)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.ToggleActive) {
			m.state.ActiveOnly = !m.state.ActiveOnly
			m.refresh()
			return m, nil
		}
		if m.input.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateNavigation(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Search {
		m.state.Search = v
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ClearSort):
		m.state.Sort = creators.SortConfig{}
		m.refresh()
		return m, nil
	}

	for _, s := range m.keys.Sort {
		if key.Matches(msg, s.binding) {
			m.state.Sort = m.state.Sort.Toggle(s.key)
			m.refresh()
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	title := "Creator Dashboard"
	if m.opts.Source != "" {
		title += " " + m.styles.Muted.Render("("+m.opts.Source+")")
	}
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n")

	sb.WriteString(m.renderCards())
	sb.WriteString("\n\n")

	sb.WriteString(m.renderFilters())
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.renderTable())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Showing %d of %d total records", len(m.view.Records), m.view.Total)))
	sb.WriteString("\n")
	sb.WriteString(m.renderHelp())
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderCards() string {
	metrics := m.view.Metrics
	symbol := m.opts.Display.CurrencySymbol
	cards := []struct{ title, value string }{
		{"Total Creators", display.FormatFollowers(metrics.TotalCreators)},
		{"Active Creators", display.FormatFollowers(metrics.ActiveCreators)},
		{"Total Revenue", display.FormatRevenue(metrics.TotalRevenue, symbol)},
		{"Avg Revenue / Active", display.FormatRevenue(metrics.AvgRevenuePerActive, symbol)},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := m.styles.CardTitle.Render(c.title) + "\n" + m.styles.CardValue.Render(c.value)
		rendered = append(rendered, m.styles.Card.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderFilters() string {
	check := "[ ]"
	if m.state.ActiveOnly {
		check = "[x]"
	}
	return strings.Join([]string{
		m.input.View(),
		check + " Active only",
		"Sort: " + m.state.Sort.String(),
	}, "   ")
}

func (m Model) renderTable() string {
	if len(m.view.Records) == 0 {
		return "No creators found\n" + m.styles.Muted.Render("Try adjusting your filters.") + "\n"
	}

	opts := m.opts.Display
	opts.MaxNameWidth = maxNameWidth
	table := display.NewCreatorTable(m.view.Records, m.state.Sort, opts).Fit(m.width)

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(table.Header()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(table.Separator()))
	sb.WriteString("\n")
	for i, line := range table.Rows() {
		style := m.styles.Inactive
		if m.view.Records[i].Active {
			style = m.styles.Row
		}
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderHelp() string {
	bindings := m.keys.helpBindings(m.input.Focused())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}
