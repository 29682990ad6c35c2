package config

import (
	"path/filepath"

	"github.com/ajxudir/creatordash/pkg/constants"
	"github.com/ajxudir/creatordash/pkg/creators"
	"golang.org/x/text/language"
)

// Config is the root configuration loaded from .creatordash.yml.
//
// Fields:
//   - Dataset: Data file path, or "sample" for the built-in records
//   - Locale: BCP 47 tag used for collation in sort tie-breaks
//   - View: Default view state; CLI flags override it
//   - Display: Presentation settings for table output
//   - WorkingDir: Directory the command runs in (not loaded from YAML)
//   - SourcePath: Path of the loaded file, empty for built-in defaults
type Config struct {
	Dataset string     `yaml:"dataset,omitempty"`
	Locale  string     `yaml:"locale,omitempty"`
	View    ViewCfg    `yaml:"view"`
	Display DisplayCfg `yaml:"display"`

	WorkingDir string `yaml:"-"`
	SourcePath string `yaml:"-"`
}

// ViewCfg holds default view state.
type ViewCfg struct {
	Search     string  `yaml:"search"`
	ActiveOnly bool    `yaml:"active_only"`
	Sort       SortCfg `yaml:"sort"`
}

// SortCfg holds the raw sort key and direction as written in YAML.
type SortCfg struct {
	Key       string `yaml:"key"`
	Direction string `yaml:"direction"`
}

// DisplayCfg holds table presentation settings.
type DisplayCfg struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	DateLayout     string `yaml:"date_layout"`
}

// ViewState converts the configured view into pipeline state.
//
// Returns:
//   - creators.ViewState: Parsed search, active-only and sort settings
//   - error: creators.ErrInvalidSortKey or creators.ErrInvalidDirection
func (c *Config) ViewState() (creators.ViewState, error) {
	sortCfg, err := creators.ParseSortConfig(c.View.Sort.Key, c.View.Sort.Direction)
	if err != nil {
		return creators.ViewState{}, err
	}
	return creators.ViewState{
		Search:     c.View.Search,
		ActiveOnly: c.View.ActiveOnly,
		Sort:       sortCfg,
	}, nil
}

// LocaleTag parses Locale, defaulting to English when unset.
func (c *Config) LocaleTag() (language.Tag, error) {
	if c.Locale == "" {
		return language.English, nil
	}
	return language.Parse(c.Locale)
}

// UsesSampleDataset reports whether the built-in records should be used.
func (c *Config) UsesSampleDataset() bool {
	return c.Dataset == "" || c.Dataset == constants.DatasetSample
}

// DatasetPath resolves Dataset against the config file's directory, or the
// working directory for built-in defaults. Absolute paths are returned as is.
func (c *Config) DatasetPath() string {
	if c.UsesSampleDataset() || filepath.IsAbs(c.Dataset) {
		return c.Dataset
	}
	base := c.WorkingDir
	if c.SourcePath != "" {
		base = filepath.Dir(c.SourcePath)
	}
	return filepath.Join(base, c.Dataset)
}

// GetCurrencySymbol returns the currency prefix, "$" when unset.
func (c *Config) GetCurrencySymbol() string {
	if c.Display.CurrencySymbol == "" {
		return constants.DefaultCurrencySymbol
	}
	return c.Display.CurrencySymbol
}

// GetDateLayout returns the date layout, "1/2/2006" when unset.
func (c *Config) GetDateLayout() string {
	if c.Display.DateLayout == "" {
		return DefaultDateLayout
	}
	return c.Display.DateLayout
}

// DefaultDateLayout renders dates as month/day/year without padding.
const DefaultDateLayout = "1/2/2006"
