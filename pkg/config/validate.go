package config

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ajxudir/creatordash/pkg/creators"
	"github.com/ajxudir/creatordash/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// knownFieldPattern extracts the field name from yaml.v3 strict-mode errors
// such as "line 3: field activeonly not found in type config.ViewCfg".
var knownFieldPattern = regexp.MustCompile(`field (\S+) not found in type config\.(\w+)`)

// sectionFields maps each config struct to its YAML path and accepted keys.
var sectionFields = map[string]struct {
	path string
	keys []string
}{
	"Config":     {"", []string{"dataset", "locale", "view", "display"}},
	"ViewCfg":    {"view", []string{"search", "active_only", "sort"}},
	"SortCfg":    {"view.sort", []string{"key", "direction"}},
	"DisplayCfg": {"display", []string{"currency_symbol", "date_layout"}},
}

// ValidateConfigFile validates raw YAML for unknown fields and invalid values.
//
// Parameters:
//   - data: YAML configuration data
//
// Returns:
//   - *errors.ValidationResult: all problems found; empty when valid
func ValidateConfigFile(data []byte) *errors.ValidationResult {
	result := errors.NewValidationResult()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	cfg := loadDefaultConfig()
	if err := decoder.Decode(cfg); err != nil {
		if typeErr, ok := err.(*yaml.TypeError); ok {
			for _, msg := range typeErr.Errors {
				result.AddError(unknownFieldError(msg))
			}
			return result
		}
		// Empty documents decode to io.EOF and are valid.
		if err == io.EOF {
			return result
		}
		result.AddError(errors.NewConfigValidationError("", fmt.Sprintf("invalid YAML: %v", err)))
		return result
	}

	checked := Validate(cfg)
	for _, e := range checked.Errors {
		result.AddError(e)
	}
	for _, w := range checked.Warnings {
		result.AddWarning(w)
	}
	return result
}

func unknownFieldError(msg string) *errors.ValidationError {
	m := knownFieldPattern.FindStringSubmatch(msg)
	if m == nil {
		return errors.NewConfigValidationError("", msg)
	}

	section := sectionFields[m[2]]
	field := m[1]
	if section.path != "" {
		field = section.path + "." + field
	}

	verr := errors.NewConfigValidationError(field, "unknown field")
	verr.ValidKeys = section.keys
	verr.Hint = "Run 'creatordash config --show-defaults' to see the accepted layout"
	return verr
}

// Validate checks the semantic values of a loaded configuration.
//
// Checks:
//   - view.sort.key is a known sort key or "none"
//   - view.sort.direction is asc or desc
//   - locale parses as a BCP 47 tag
//   - display.date_layout is not blank when set
//
// A descending direction without a sort key is reported as a warning since
// the view stays in dataset order.
//
// Returns:
//   - *errors.ValidationResult: all problems found; empty when valid
func Validate(cfg *Config) *errors.ValidationResult {
	result := errors.NewValidationResult()

	key, keyErr := creators.ParseSortKey(cfg.View.Sort.Key)
	if keyErr != nil {
		verr := errors.NewConfigValidationError("view.sort.key", keyErr.Error())
		verr.ValidKeys = creators.SortKeyNames()
		verr.Err = keyErr
		result.AddError(verr)
	}

	dir, err := creators.ParseDirection(cfg.View.Sort.Direction)
	if err != nil {
		verr := errors.NewConfigValidationError("view.sort.direction", err.Error())
		verr.ValidKeys = []string{string(creators.Asc), string(creators.Desc)}
		verr.Err = err
		result.AddError(verr)
	} else if keyErr == nil && key == creators.SortKeyNone && dir == creators.Desc {
		result.AddWarning("view.sort.direction desc has no effect while view.sort.key is none")
	}

	if cfg.Locale != "" {
		if _, err := language.Parse(cfg.Locale); err != nil {
			verr := errors.NewConfigValidationError("locale", fmt.Sprintf("invalid locale %q", cfg.Locale))
			verr.Expected = "BCP 47 language tag (e.g., en, de, sv-SE)"
			verr.Err = err
			result.AddError(verr)
		}
	}

	if cfg.Display.DateLayout != "" && strings.TrimSpace(cfg.Display.DateLayout) == "" {
		verr := errors.NewConfigValidationError("display.date_layout", "must not be blank")
		verr.Expected = "Go time layout (e.g., 1/2/2006)"
		result.AddError(verr)
	}

	return result
}
