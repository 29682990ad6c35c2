package cmd

import (
	"fmt"
	"strings"

	"github.com/ajxudir/creatordash/pkg/config"
	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/dataset"
	"github.com/ajxudir/creatordash/pkg/display"
	"github.com/ajxudir/creatordash/pkg/errors"
	"github.com/ajxudir/creatordash/pkg/output"
	"github.com/ajxudir/creatordash/pkg/verbose"
	"github.com/ajxudir/creatordash/pkg/warnings"
	"github.com/spf13/cobra"
)

// viewFlags are the flags shared by every command that runs the pipeline.
// Values set on the command line override the view section of the config.
type viewFlags struct {
	search     string
	activeOnly bool
	sortKey    string
	direction  string
	data       string
	configPath string
	dir        string
}

// bind registers the flags on cmd.
func (f *viewFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Case-insensitive substring of the creator name")
	cmd.Flags().BoolVarP(&f.activeOnly, "active-only", "a", false, "Show only active creators")
	cmd.Flags().StringVarP(&f.sortKey, "sort", "k", "", "Sort key: "+strings.Join(creators.SortKeyNames(), ", "))
	cmd.Flags().StringVar(&f.direction, "direction", "asc", "Sort direction: asc or desc")
	cmd.Flags().StringVar(&f.data, "data", "", "Dataset file (.json, .yaml, .yml) or \"sample\"")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path")
	cmd.Flags().StringVarP(&f.dir, "dir", "d", ".", "Directory to look up .creatordash.yml in")
}

// viewSession is everything a command needs after flags and config are resolved.
type viewSession struct {
	cfg      *config.Config
	provider dataset.Provider
	records  []creators.Creator
	state    creators.ViewState
	sorter   *creators.Sorter
	display  display.Options
	warnings []string
}

// Apply runs the pipeline over the loaded records.
func (s *viewSession) Apply() (creators.View, error) {
	view, err := s.sorter.Apply(s.records, s.state)
	if err != nil {
		return creators.View{}, errors.NewExitError(errors.ExitConfigError,
			errors.NewViewValidationError("sort", err, creators.SortKeyNames()))
	}
	verbose.ViewApplied(s.state.Search, s.state.ActiveOnly, s.state.Sort.String(), len(view.Records), view.Total)
	return view, nil
}

// Summary describes the session for structured output.
func (s *viewSession) Summary(view creators.View) output.ViewSummary {
	return output.ViewSummary{
		Source:     s.provider.Source(),
		Search:     s.state.Search,
		ActiveOnly: s.state.ActiveOnly,
		Sort:       s.state.Sort.String(),
		Total:      view.Total,
		Visible:    len(view.Records),
	}
}

// resolveViewState layers the changed flags over the configured view.
//
// --sort without --direction sorts ascending; --direction alone changes the
// direction of the configured key.
func resolveViewState(cmd *cobra.Command, f *viewFlags, cfg *config.Config) (creators.ViewState, error) {
	state, err := cfg.ViewState()
	if err != nil {
		return creators.ViewState{}, errors.NewExitError(errors.ExitConfigError,
			errors.NewViewValidationError("view.sort", err, creators.SortKeyNames()))
	}

	flags := cmd.Flags()
	if flags.Changed("search") {
		state.Search = f.search
	}
	if flags.Changed("active-only") {
		state.ActiveOnly = f.activeOnly
	}

	if flags.Changed("sort") {
		key, err := creators.ParseSortKey(f.sortKey)
		if err != nil {
			return creators.ViewState{}, errors.NewExitError(errors.ExitConfigError,
				errors.NewViewValidationError("--sort", err, creators.SortKeyNames()))
		}
		state.Sort = creators.SortConfig{Key: key, Direction: creators.Asc}
	}

	if flags.Changed("direction") {
		direction, err := creators.ParseDirection(f.direction)
		if err != nil {
			return creators.ViewState{}, errors.NewExitError(errors.ExitConfigError,
				errors.NewViewValidationError("--direction", err, []string{string(creators.Asc), string(creators.Desc)}))
		}
		state.Sort.Direction = direction
	}

	return state, nil
}

// openSession loads config, resolves the view and loads the dataset.
//
// Dataset warnings are collected rather than printed so each command can
// place them after its main output.
//
// Parameters:
//   - cmd: Command whose flags were parsed
//   - f: Bound view flags of cmd
//
// Returns:
//   - *viewSession: Resolved session
//   - error: ExitError for config and flag problems; dataset errors as returned by the provider
func openSession(cmd *cobra.Command, f *viewFlags) (*viewSession, error) {
	cfg, err := loadAndValidateConfig(f.configPath, f.dir)
	if err != nil {
		return nil, err
	}

	state, err := resolveViewState(cmd, f, cfg)
	if err != nil {
		return nil, err
	}

	locale, err := cfg.LocaleTag()
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError,
			errors.NewConfigValidationError("locale", fmt.Sprintf("invalid locale %q: %v", cfg.Locale, err)))
	}

	path := cfg.DatasetPath()
	if cmd.Flags().Changed("data") {
		path = f.data
	}
	provider := dataset.Open(path)
	verbose.Infof("Dataset source: %s", provider.Source())

	collector := display.NewWarningCollector()
	restore := warnings.SetWarningWriter(collector)
	records, err := provider.Load()
	restore()
	if err != nil {
		if _, ok := errors.IsValidationError(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load dataset %s: %w", provider.Source(), err)
	}

	return &viewSession{
		cfg:      cfg,
		provider: provider,
		records:  records,
		state:    state,
		sorter:   creators.NewSorter(locale),
		display: display.Options{
			CurrencySymbol: cfg.GetCurrencySymbol(),
			DateLayout:     cfg.GetDateLayout(),
		},
		warnings: collector.Messages(),
	}, nil
}

// parseOutputFormat validates --output and rejects --verbose with structured formats.
func parseOutputFormat(value string) (output.Format, error) {
	format, err := output.ParseFormat(value)
	if err != nil {
		return format, errors.NewExitError(errors.ExitConfigError, &errors.ValidationError{
			Category:  errors.ValidationCategoryView,
			Field:     "--output",
			Err:       err,
			ValidKeys: output.FormatNames(),
		})
	}

	if err := output.ValidateStructuredOutputFlags(format, verboseFlag); err != nil {
		return format, errors.NewExitError(errors.ExitConfigError, err)
	}
	return format, nil
}
