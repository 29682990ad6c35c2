package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajxudir/creatordash/pkg/config"
	"github.com/ajxudir/creatordash/pkg/constants"
	"github.com/ajxudir/creatordash/pkg/errors"
	"github.com/ajxudir/creatordash/pkg/verbose"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configPathFlag          string
	configDirFlag           string
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

// loadAndValidateConfig loads the configuration and validates it for unknown
// fields and invalid values before any command uses it.
//
// Parameters:
//   - configPath: Path to custom config file, or empty for default location
//   - workDir: Working directory to search for default config
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: ExitError with ExitConfigError wrapping the validation errors
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(workDir, constants.ConfigFileName)
	}

	data, err := readFileFunc(path)
	switch {
	case err == nil:
		result := config.ValidateConfigFile(data)
		if result.HasErrors() {
			verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, path)
			return nil, errors.NewExitError(errors.ExitConfigError, result.Err())
		}
		for _, w := range result.Warnings {
			verbose.Infof("Config warning in %s: %s", path, w)
		}
	case configPath != "":
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}

	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, create or validate configuration",
	Long:  `Show the default or effective configuration, create a .creatordash.yml template, or validate a configuration file.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .creatordash.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path")
	configCmd.Flags().StringVarP(&configDirFlag, "dir", "d", ".", "Directory to create or look up .creatordash.yml in")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .creatordash.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the effective merged configuration
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configValidateFlag {
		return validateConfigFile()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		cfg, err := loadAndValidateConfig(configPathFlag, configDirFlag)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}

		source := cfg.SourcePath
		if source == "" {
			source = "(built-in defaults)"
		}
		fmt.Println("Effective configuration:")
		fmt.Println()
		fmt.Printf("Source:  %s\n", source)
		fmt.Printf("Dataset: %s\n", datasetLabel(cfg))
		fmt.Println()
		fmt.Print(string(data))
		return nil
	}

	return cmd.Help()
}

// datasetLabel names the dataset a config resolves to.
func datasetLabel(cfg *config.Config) string {
	if cfg.UsesSampleDataset() {
		return constants.DatasetSample
	}
	return cfg.DatasetPath()
}

// validateConfigFile validates the configuration file at --config, or
// .creatordash.yml in --dir, and reports every problem found.
//
// Returns:
//   - error: ExitError with ExitConfigError code on validation failure
func validateConfigFile() error {
	configPath := configPathFlag
	if configPath == "" {
		configPath = filepath.Join(configDirFlag, constants.ConfigFileName)
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	result := config.ValidateConfigFile(data)

	if result.HasErrors() {
		fmt.Printf("Configuration validation failed for: %s\n\n", configPath)
		result.PrintTo(os.Stdout, verbose.IsEnabled())
		fmt.Println()
		if !verbose.IsEnabled() {
			fmt.Printf("%s Run with --verbose for valid keys and hints\n", constants.IconLightbulb)
		}
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitErrorf(errors.ExitConfigError, "configuration validation failed")
	}

	if result.HasWarnings() {
		fmt.Printf("%s Configuration valid with warnings: %s\n\n", constants.IconWarn, configPath)
		result.PrintTo(os.Stdout, false)
		fmt.Println()
	} else {
		fmt.Printf("Configuration valid: %s\n", configPath)
	}

	return nil
}

// createConfigTemplate writes the commented template to .creatordash.yml in
// --dir. It refuses to overwrite an existing file.
func createConfigTemplate() error {
	configPath := filepath.Join(configDirFlag, constants.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := writeFileFunc(configPath, []byte(config.GetTemplateConfig()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", configPath)
	return nil
}
